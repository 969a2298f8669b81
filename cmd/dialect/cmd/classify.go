package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"github.com/salernoelia/py-dialect-test/internal/shell"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [sentence...]",
	Short: "Guess which canton's dialect some sentences are closest to",
	Long: `Compare sentences in your dialect against every canton's sample phrases
and print the closest canton with per-canton scores. Lower is closer.

Sentences are taken from the arguments, or one per line from stdin when
no arguments are given. Blank lines are ignored.

Example:
  dialect classify "Wiemer gahts dir?"
  printf 'Wia goots dir?\nI mag gärn Pizza ässe.\n' | dialect classify --ranked`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("ranked", false, "sort scores from closest to farthest")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ranked, _ := cmd.Flags().GetBool("ranked")

	corpus, _, err := loadCorpus()
	if err != nil {
		return err
	}

	sentences := args
	if len(sentences) == 0 {
		sentences, err = readSentences(cmd)
		if err != nil {
			return err
		}
	}
	sentences = nonBlank(sentences)

	res, err := dialect.Classify(sentences, corpus)
	if err != nil {
		return fmt.Errorf("classifying: %w", err)
	}

	logger.Debug("classified sentences", "count", len(sentences), "result", res.Summary())

	shell.WriteResult(cmd.OutOrStdout(), res, ranked, highlighter())
	return nil
}

func readSentences(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
