package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"github.com/salernoelia/py-dialect-test/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewCantons ViewType = iota
	ViewTranslate
	ViewTest
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// AppModel is the main TUI model
type AppModel struct {
	corpus *dialect.Corpus
	source string

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	cantonsView views.CantonsModel
	quizView    views.QuizModel
	testView    views.TestModel

	canton   dialect.Region
	showHelp bool
}

// NewApp creates a new TUI application over the corpus. source names where
// the corpus was loaded from and is shown in the sidebar.
func NewApp(c *dialect.Corpus, source string) AppModel {
	menuItems := []MenuItem{
		{Label: "Cantons", View: ViewCantons, Shortcut: "1"},
		{Label: "Translate", View: ViewTranslate, Shortcut: "2"},
		{Label: "Test", View: ViewTest, Shortcut: "3"},
	}

	return AppModel{
		corpus:       c,
		source:       source,
		sidebarWidth: 20,
		currentView:  ViewCantons,
		menuItems:    menuItems,

		cantonsView: views.NewCantonsModel(c),
		quizView:    views.NewQuizModel(c),
		testView:    views.NewTestModel(c),
	}
}

// Canton returns the canton chosen in the picker.
func (m AppModel) Canton() dialect.Region {
	return m.canton
}

// CurrentView returns the active view.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// capturesText reports whether the active view is reading free text, in
// which case single-key shortcuts must reach the view.
func (m AppModel) capturesText() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewTranslate:
		return m.canton != "" && !m.quizView.Done()
	case ViewTest:
		return m.testView.Result() == nil
	}
	return false
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		if !m.capturesText() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1":
				m.switchTo(ViewCantons)
				return m, nil
			case "2":
				m.switchTo(ViewTranslate)
				return m, nil
			case "3":
				m.switchTo(ViewTest)
				return m, nil
			}
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.cantonsView.SetSize(contentWidth, contentHeight)
		m.quizView.SetSize(contentWidth, contentHeight)
		m.testView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.CantonSelectedMsg:
		m.canton = msg.Canton
		m.quizView.SetCanton(msg.Canton)
		m.switchTo(ViewTranslate)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewCantons:
		m.cantonsView, cmd = m.cantonsView.Update(msg)
	case ViewTranslate:
		m.quizView, cmd = m.quizView.Update(msg)
	case ViewTest:
		m.testView, cmd = m.testView.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewCantons:
		content = m.cantonsView.View()
	case ViewTranslate:
		content = m.quizView.View()
	case ViewTest:
		content = m.testView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" Dialäkt "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	items = append(items, "")
	canton := "no canton"
	if m.canton != "" {
		canton = string(m.canton)
	}
	items = append(items, SidebarCantonStyle.Render(canton))
	items = append(items, SidebarItemStyle.Render(m.source))

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  esc Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("Swiss German Dialect Trainer") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("1-3") + descStyle.Render("Switch views") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Toggle sidebar focus") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("Sidebar, then quit") + "\n"
	helpText += keyStyle.Render("ctrl+c") + descStyle.Render("Quit") + "\n"

	helpText += sectionStyle.Render("Cantons") + "\n"
	helpText += keyStyle.Render("j/k ↑/↓") + descStyle.Render("Move") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Choose canton") + "\n"

	helpText += sectionStyle.Render("Translate") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Submit translation") + "\n"
	helpText += keyStyle.Render("r") + descStyle.Render("Start over when done") + "\n"

	helpText += sectionStyle.Render("Test") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Add sentence") + "\n"
	helpText += keyStyle.Render("exit") + descStyle.Render("Guess canton") + "\n"
	helpText += keyStyle.Render("y") + descStyle.Render("Copy result") + "\n"
	helpText += keyStyle.Render("n") + descStyle.Render("New test") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
