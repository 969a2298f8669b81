package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
)

// QuizAnswer is one echoed translation.
type QuizAnswer struct {
	Reference string
	Response  string
}

// QuizModel asks for a dialect translation of each reference phrase.
// Answers are echoed back, not scored.
type QuizModel struct {
	input      textinput.Model
	references []string

	canton  dialect.Region
	current int
	answers []QuizAnswer
	done    bool

	width  int
	height int
}

// NewQuizModel creates a new translation quiz view.
func NewQuizModel(c *dialect.Corpus) QuizModel {
	ti := textinput.New()
	ti.Placeholder = "Your dialect translation..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return QuizModel{
		input:      ti,
		references: c.ReferencePhrases(),
	}
}

// SetSize updates the view dimensions.
func (m *QuizModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetCanton starts a fresh quiz for the canton.
func (m *QuizModel) SetCanton(c dialect.Region) {
	m.canton = c
	m.restart()
}

// Answers returns the translations entered so far.
func (m QuizModel) Answers() []QuizAnswer {
	return m.answers
}

// Done reports whether every reference phrase has been answered.
func (m QuizModel) Done() bool {
	return m.done
}

func (m *QuizModel) restart() {
	m.current = 0
	m.answers = nil
	m.done = len(m.references) == 0
	m.input.Reset()
	if m.done {
		m.input.Blur()
	} else {
		m.input.Focus()
	}
}

// Update handles messages.
func (m QuizModel) Update(msg tea.Msg) (QuizModel, tea.Cmd) {
	if m.canton == "" {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if m.done {
			if key.String() == "r" {
				m.restart()
			}
			return m, nil
		}

		if key.Type == tea.KeyEnter {
			m.answers = append(m.answers, QuizAnswer{
				Reference: m.references[m.current],
				Response:  m.input.Value(),
			})
			m.input.Reset()
			m.current++
			if m.current >= len(m.references) {
				m.done = true
				m.input.Blur()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the quiz.
func (m QuizModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Translation Mode"))
	b.WriteString("\n\n")

	if m.canton == "" {
		b.WriteString(errorStyle.Render("No canton chosen yet."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Pick one under Cantons first"))
		return b.String()
	}

	b.WriteString(subtitleStyle.Render("Translate into the " + string(m.canton) + " dialect"))
	b.WriteString("\n\n")

	for _, a := range m.answers {
		b.WriteString(labelStyle.Render("High German: ") + valueStyle.Render(a.Reference) + "\n")
		b.WriteString(labelStyle.Render("You said:    ") + referenceStyle.Render(a.Response) + "\n\n")
	}

	if m.done {
		b.WriteString(helpStyle.Render("r: start over"))
		return b.String()
	}

	progress := fmt.Sprintf("Phrase %d of %d", m.current+1, len(m.references))
	b.WriteString(helpStyle.Render(progress))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("High German: ") + referenceStyle.Render(m.references[m.current]))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: submit"))

	return b.String()
}
