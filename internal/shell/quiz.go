package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/salernoelia/py-dialect-test/internal/dialect"
)

// Answer is one quiz response. Answers are echoed, never scored.
type Answer struct {
	Reference string
	Response  string
}

// Quiz shows each reference phrase in order, reads one line per phrase and
// echoes it back. It stops early without error when input ends.
func Quiz(in io.Reader, out io.Writer, c *dialect.Corpus, canton dialect.Region) ([]Answer, error) {
	return runQuiz(bufio.NewScanner(in), out, c, canton)
}

func runQuiz(sc *bufio.Scanner, out io.Writer, c *dialect.Corpus, canton dialect.Region) ([]Answer, error) {
	if canton == "" {
		fmt.Fprintln(out, "No canton chosen yet.")
		return nil, nil
	}
	if !c.Has(canton) {
		return nil, fmt.Errorf("canton %s: %w", canton, dialect.ErrNotFound)
	}

	fmt.Fprintln(out, "\n=== Translation Mode ===")

	var answers []Answer
	for _, sentence := range c.ReferencePhrases() {
		fmt.Fprintf(out, "\nHigh German: %s\n", sentence)
		fmt.Fprint(out, "Your dialect translation: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return answers, sc.Err()
		}

		response := sc.Text()
		fmt.Fprintf(out, "You said: %s\n", response)
		answers = append(answers, Answer{Reference: sentence, Response: response})
	}

	return answers, nil
}
