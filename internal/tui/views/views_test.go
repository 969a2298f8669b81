package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/salernoelia/py-dialect-test/internal/config"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func corpus(t *testing.T) *dialect.Corpus {
	t.Helper()
	c, err := config.DefaultCorpus()
	require.NoError(t, err)
	return c
}

func TestCantonsSelect(t *testing.T) {
	m := NewCantonsModel(corpus(t))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("k"))
	m, cmd := m.Update(enter)

	require.NotNil(t, cmd)
	assert.Equal(t, CantonSelectedMsg{Canton: "Bern"}, cmd())
	assert.Equal(t, dialect.Region("Bern"), m.Selected())
	assert.Contains(t, m.View(), "Wie geit’s der?")
}

func TestCantonsCursorBounds(t *testing.T) {
	m := NewCantonsModel(corpus(t))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	_, cmd := m.Update(enter)
	assert.Equal(t, CantonSelectedMsg{Canton: "Basel"}, cmd())
}

func TestQuiz(t *testing.T) {
	t.Run("without canton", func(t *testing.T) {
		m := NewQuizModel(corpus(t))
		m, _ = m.Update(runes("hoi"))
		m, _ = m.Update(enter)
		assert.Empty(t, m.Answers())
		assert.Contains(t, m.View(), "No canton chosen yet.")
	})

	t.Run("echoes every answer", func(t *testing.T) {
		m := NewQuizModel(corpus(t))
		m.SetCanton("Zurich")

		m, _ = m.Update(runes("Wie gahts?"))
		m, _ = m.Update(enter)
		assert.False(t, m.Done())

		m, _ = m.Update(runes("Pizza!"))
		m, _ = m.Update(enter)
		require.True(t, m.Done())

		assert.Equal(t, []QuizAnswer{
			{Reference: "How are you?", Response: "Wie gahts?"},
			{Reference: "I like eating pizza.", Response: "Pizza!"},
		}, m.Answers())

		m, _ = m.Update(runes("r"))
		assert.False(t, m.Done())
		assert.Empty(t, m.Answers())
	})
}

func TestTestMode(t *testing.T) {
	t.Run("empty input asks for sentences", func(t *testing.T) {
		m := NewTestModel(corpus(t))
		m, _ = m.Update(enter)
		assert.Nil(t, m.Result())
		assert.Contains(t, m.View(), "no sentences entered yet")
	})

	t.Run("guesses closest canton", func(t *testing.T) {
		m := NewTestModel(corpus(t))
		m, _ = m.Update(runes("Wia goots dir?"))
		m, _ = m.Update(enter)
		m, _ = m.Update(runes("exit"))
		m, _ = m.Update(enter)

		require.NotNil(t, m.Result())
		assert.Equal(t, []string{"Wia goots dir?"}, m.Sentences())
		assert.Equal(t, dialect.Region("Basel"), m.Result().Best)
		assert.Zero(t, m.Result().Scores["Basel"])
	})

	t.Run("copies summary", func(t *testing.T) {
		m := NewTestModel(corpus(t))
		var copied string
		m.copyText = func(s string) error {
			copied = s
			return nil
		}

		m, _ = m.Update(runes("wiemer gahts dir?"))
		m, _ = m.Update(enter)
		m, _ = m.Update(enter)
		m, cmd := m.Update(runes("y"))

		assert.NotNil(t, cmd)
		assert.Equal(t, m.Result().Summary(), copied)
		assert.Contains(t, m.View(), "Copied!")

		m, _ = m.Update(clearCopiedMsg{})
		assert.NotContains(t, m.View(), "Copied!")
	})

	t.Run("copy failure is shown", func(t *testing.T) {
		m := NewTestModel(corpus(t))
		m.copyText = func(string) error { return errors.New("no clipboard") }

		m, _ = m.Update(runes("hoi"))
		m, _ = m.Update(enter)
		m, _ = m.Update(enter)
		m, _ = m.Update(runes("y"))
		assert.Contains(t, m.View(), "no clipboard")
	})

	t.Run("new test resets", func(t *testing.T) {
		m := NewTestModel(corpus(t))
		m, _ = m.Update(runes("hoi"))
		m, _ = m.Update(enter)
		m, _ = m.Update(enter)
		require.NotNil(t, m.Result())

		m, _ = m.Update(runes("n"))
		assert.Nil(t, m.Result())
		assert.Empty(t, m.Sentences())
	})
}
