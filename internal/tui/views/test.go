package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/salernoelia/py-dialect-test/internal/clipboard"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
)

const maxBarWidth = 30

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// TestModel collects dialect sentences and shows the closest canton.
type TestModel struct {
	input  textinput.Model
	corpus *dialect.Corpus

	sentences []string
	result    *dialect.Result
	err       error

	copyText func(string) error
	copied   bool

	width  int
	height int
}

// NewTestModel creates a new test mode view.
func NewTestModel(c *dialect.Corpus) TestModel {
	ti := textinput.New()
	ti.Placeholder = "A sentence in your dialect..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return TestModel{
		input:    ti,
		corpus:   c,
		copyText: clipboard.Write,
	}
}

// SetSize updates the view dimensions.
func (m *TestModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Result returns the last classification, nil before the first run.
func (m TestModel) Result() *dialect.Result {
	return m.result
}

// Sentences returns the sentences entered for the current run.
func (m TestModel) Sentences() []string {
	return m.sentences
}

func (m *TestModel) reset() {
	m.sentences = nil
	m.result = nil
	m.err = nil
	m.copied = false
	m.input.Reset()
	m.input.Focus()
}

// Update handles messages.
func (m TestModel) Update(msg tea.Msg) (TestModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.result != nil {
			switch msg.String() {
			case "y":
				if err := m.copyText(m.result.Summary()); err != nil {
					m.err = err
					return m, nil
				}
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			case "n", "r":
				m.reset()
			}
			return m, nil
		}

		if msg.Type == tea.KeyEnter {
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text != "" && !strings.EqualFold(text, "exit") {
				m.sentences = append(m.sentences, text)
				m.err = nil
				return m, nil
			}
			m.classify()
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TestModel) classify() {
	res, err := dialect.Classify(m.sentences, m.corpus)
	if errors.Is(err, dialect.ErrEmptyInput) {
		m.err = errors.New("no sentences entered yet")
		return
	}
	if err != nil {
		m.err = err
		return
	}

	m.result = res
	m.err = nil
	m.input.Blur()
}

// View renders the test mode.
func (m TestModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Test Mode"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Type sentences in your dialect, then guess the canton"))
	b.WriteString("\n\n")

	for i, s := range m.sentences {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d. ", i+1)) + valueStyle.Render(s) + "\n")
	}
	if len(m.sentences) > 0 {
		b.WriteString("\n")
	}

	if m.result == nil {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter: add sentence • enter on empty line or 'exit': guess"))
		return b.String()
	}

	b.WriteString(m.renderResult())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}
	help := "y: copy • n: new test"
	if m.copied {
		help = copiedStyle.Render("Copied!") + "  " + helpStyle.Render(help)
	} else {
		help = helpStyle.Render(help)
	}
	b.WriteString(help)

	return b.String()
}

func (m TestModel) renderResult() string {
	r := m.result

	header := labelStyle.Render("Your dialect might be closest to: ")
	if r.Found {
		header += bestStyle.Render(string(r.Best))
	} else {
		header += errorStyle.Render("(none)")
	}

	width, top := 0, 0
	for _, region := range r.Order {
		width = max(width, runewidth.StringWidth(string(region)))
		top = max(top, r.Scores[region])
	}

	var lines []string
	for _, region := range r.Order {
		score := r.Scores[region]
		name := runewidth.FillRight(string(region), width)
		if r.Found && region == r.Best {
			name = bestStyle.Render(name)
		} else {
			name = valueStyle.Render(name)
		}

		bar := 0
		if top > 0 {
			bar = score * maxBarWidth / top
		}
		lines = append(lines, fmt.Sprintf("%s  %s %d", name, barStyle.Render(strings.Repeat("█", bar)), score))
	}

	return boxStyle.Render(header + "\n\n" + subtitleStyle.Render("Detailed scores (lower is closer)") + "\n\n" + strings.Join(lines, "\n"))
}
