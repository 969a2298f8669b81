// Package shell implements the line-oriented dialect menu used when the
// terminal cannot host the TUI, or when input is piped.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/salernoelia/py-dialect-test/internal/dialect"
)

// Shell runs the numbered menu loop.
type Shell struct {
	scanner   *bufio.Scanner
	out       io.Writer
	corpus    *dialect.Corpus
	logger    *slog.Logger
	highlight func(string) string

	canton dialect.Region
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithHighlight sets the function used to emphasize the best region.
func WithHighlight(fn func(string) string) Option {
	return func(s *Shell) {
		s.highlight = fn
	}
}

// New creates a shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, c *dialect.Corpus, opts ...Option) *Shell {
	s := &Shell{
		scanner:   bufio.NewScanner(in),
		out:       out,
		corpus:    c,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		highlight: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Canton returns the currently selected canton, if any.
func (s *Shell) Canton() dialect.Region {
	return s.canton
}

// Run shows the menu until the user quits or input ends.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out, "\n=== Swiss German Dialect CLI ===")
		fmt.Fprintln(s.out, "1. Choose Canton")
		fmt.Fprintln(s.out, "2. Translation Mode (translate from High German to selected dialect)")
		fmt.Fprintln(s.out, "3. Test Mode (guess which canton your dialect is closest to)")
		fmt.Fprintln(s.out, "4. Quit")

		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			return s.scanner.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.canton = s.chooseCanton()
		case "2":
			if _, err := runQuiz(s.scanner, s.out, s.corpus, s.canton); err != nil {
				return err
			}
		case "3":
			if err := s.testMode(); err != nil {
				return err
			}
		case "4":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// prompt prints label and reads one line. ok is false at end of input.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) chooseCanton() dialect.Region {
	cantons := s.corpus.Regions()

	fmt.Fprintln(s.out, "\nAvailable Cantons:")
	for i, c := range cantons {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, c)
	}

	choice, _ := s.prompt("Select a canton by number: ")
	index, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Returning to main menu.")
		return ""
	}
	if index < 1 || index > len(cantons) {
		fmt.Fprintln(s.out, "Invalid number. Returning to main menu.")
		return ""
	}

	selected := cantons[index-1]
	fmt.Fprintf(s.out, "\nYou selected: %s\n", selected)
	return selected
}

func (s *Shell) testMode() error {
	fmt.Fprintln(s.out, "\n=== Test Mode ===")
	fmt.Fprintln(s.out, "Enter a sentence in your dialect (or type 'exit' to stop):")

	var sentences []string
	for {
		text, ok := s.prompt("> ")
		if !ok {
			break
		}
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, "exit") {
			break
		}
		if text != "" {
			sentences = append(sentences, text)
		}
	}

	res, err := dialect.Classify(sentences, s.corpus)
	if errors.Is(err, dialect.ErrEmptyInput) {
		fmt.Fprintln(s.out, "No sentences entered. Returning to main menu.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("classifying: %w", err)
	}

	s.logger.Debug("classified sentences", "count", len(sentences), "result", res.Summary())

	WriteResult(s.out, res, false, s.highlight)
	return nil
}
