package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
)

// CantonSelectedMsg is sent when the user picks a canton.
type CantonSelectedMsg struct {
	Canton dialect.Region
}

// CantonsModel lists the corpus regions and their sample phrases.
type CantonsModel struct {
	corpus   *dialect.Corpus
	cantons  []dialect.Region
	cursor   int
	selected dialect.Region

	width  int
	height int
}

// NewCantonsModel creates a new canton picker.
func NewCantonsModel(c *dialect.Corpus) CantonsModel {
	return CantonsModel{
		corpus:  c,
		cantons: c.Regions(),
	}
}

// SetSize updates the view dimensions.
func (m *CantonsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the chosen canton, empty if none.
func (m CantonsModel) Selected() dialect.Region {
	return m.selected
}

// Update handles messages.
func (m CantonsModel) Update(msg tea.Msg) (CantonsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.cantons) == 0 {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.cantons)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		m.selected = m.cantons[m.cursor]
		canton := m.selected
		return m, func() tea.Msg { return CantonSelectedMsg{Canton: canton} }
	}

	return m, nil
}

// View renders the canton list and the phrases of the canton under the cursor.
func (m CantonsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Choose Canton"))
	b.WriteString("\n\n")

	if len(m.cantons) == 0 {
		b.WriteString(errorStyle.Render("The corpus has no cantons"))
		return b.String()
	}

	for i, c := range m.cantons {
		label := fmt.Sprintf("%d. %s", i+1, c)
		if c == m.selected {
			label += " ✓"
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(itemStyle.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if phrases, err := m.corpus.Phrases(m.cantons[m.cursor]); err == nil {
		var lines []string
		for _, p := range phrases {
			lines = append(lines, labelStyle.Render(p.Reference)+"\n  "+valueStyle.Render(p.Dialect))
		}
		b.WriteString(boxStyle.Render(
			subtitleStyle.Render("Sample phrases") + "\n\n" + strings.Join(lines, "\n"),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("j/k: move • enter: select"))
	return b.String()
}
