package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/salernoelia/py-dialect-test/internal/config"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"github.com/salernoelia/py-dialect-test/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) AppModel {
	t.Helper()
	c, err := config.DefaultCorpus()
	require.NoError(t, err)

	m, _ := NewApp(c, "built-in").Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestAppSwitchViews(t *testing.T) {
	m := newApp(t)
	assert.Equal(t, ViewCantons, m.CurrentView())
	assert.Contains(t, m.View(), "Choose Canton")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	assert.Equal(t, ViewTest, m.CurrentView())
	assert.Contains(t, m.View(), "Test Mode")
}

func TestAppCantonSelection(t *testing.T) {
	m := newApp(t)

	m, _ = send(t, m, views.CantonSelectedMsg{Canton: "Basel"})
	assert.Equal(t, dialect.Region("Basel"), m.Canton())
	assert.Equal(t, ViewTranslate, m.CurrentView())
	assert.Contains(t, m.View(), "How are you?")
}

func TestAppTextInputKeepsShortcuts(t *testing.T) {
	m := newApp(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})

	// "q" and digits are text while the test view reads sentences.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewTest, m.CurrentView())
	assert.Equal(t, []string{"q1"}, m.testView.Sentences())
}

func TestAppQuit(t *testing.T) {
	m := newApp(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppHelpOverlay(t *testing.T) {
	m := newApp(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Contains(t, m.View(), "Press any key to close")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.NotContains(t, m.View(), "Press any key to close")
}

func TestAppSidebarNavigation(t *testing.T) {
	m := newApp(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewTranslate, m.CurrentView())
	assert.Contains(t, m.View(), "No canton chosen yet.")
}
