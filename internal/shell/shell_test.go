package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/salernoelia/py-dialect-test/internal/config"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, input string, opts ...Option) (*Shell, string) {
	t.Helper()

	c, err := config.DefaultCorpus()
	require.NoError(t, err)

	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, c, opts...)
	require.NoError(t, s.Run())
	return s, out.String()
}

func TestShellQuit(t *testing.T) {
	_, out := runShell(t, "4\n")
	assert.Contains(t, out, "=== Swiss German Dialect CLI ===")
	assert.Contains(t, out, "Goodbye!")
}

func TestShellEndOfInput(t *testing.T) {
	_, out := runShell(t, "")
	assert.NotContains(t, out, "Goodbye!")
}

func TestShellInvalidChoice(t *testing.T) {
	_, out := runShell(t, "7\n4\n")
	assert.Contains(t, out, "Invalid choice. Please try again.")
}

func TestShellChooseCanton(t *testing.T) {
	t.Run("valid number", func(t *testing.T) {
		s, out := runShell(t, "2\n4\n")
		assert.Equal(t, dialect.Region(""), s.Canton())
		assert.Contains(t, out, "No canton chosen yet.")

		s, out = runShell(t, "1\n3\n4\n")
		assert.Contains(t, out, "1. Zurich\n2. Bern\n3. Basel\n")
		assert.Contains(t, out, "You selected: Basel")
		assert.Equal(t, dialect.Region("Basel"), s.Canton())
	})

	t.Run("out of range", func(t *testing.T) {
		s, out := runShell(t, "1\n9\n4\n")
		assert.Contains(t, out, "Invalid number. Returning to main menu.")
		assert.Empty(t, s.Canton())
	})

	t.Run("not a number", func(t *testing.T) {
		s, out := runShell(t, "1\nbern\n4\n")
		assert.Contains(t, out, "Invalid input. Returning to main menu.")
		assert.Empty(t, s.Canton())
	})
}

func TestShellTranslationMode(t *testing.T) {
	_, out := runShell(t, "1\n1\n2\nGrüezi\nIch ha Pizza gärn\n4\n")

	assert.Contains(t, out, "=== Translation Mode ===")
	assert.Contains(t, out, "High German: How are you?")
	assert.Contains(t, out, "You said: Grüezi")
	assert.Contains(t, out, "High German: I like eating pizza.")
	assert.Contains(t, out, "You said: Ich ha Pizza gärn")
}

func TestShellTestMode(t *testing.T) {
	t.Run("classifies sentences", func(t *testing.T) {
		_, out := runShell(t, "3\nWiemer gahts dir?\n\nEXIT\n4\n")
		assert.Contains(t, out, "Your dialect might be closest to: Zurich")
		assert.Contains(t, out, "  Zurich: 0\n")
		assert.Contains(t, out, "Goodbye!")
	})

	t.Run("highlights best region", func(t *testing.T) {
		_, out := runShell(t, "3\nwia goots dir?\nexit\n4\n", WithHighlight(func(s string) string {
			return "*" + s + "*"
		}))
		assert.Contains(t, out, "closest to: *Basel*")
	})

	t.Run("no sentences", func(t *testing.T) {
		_, out := runShell(t, "3\n  \nexit\n4\n")
		assert.Contains(t, out, "No sentences entered. Returning to main menu.")
		assert.NotContains(t, out, "Detailed scores:")
	})

	t.Run("input ends during test mode", func(t *testing.T) {
		_, out := runShell(t, "3\nwie geit’s der?\n")
		assert.Contains(t, out, "Your dialect might be closest to: Bern")
	})
}
