package cmd

import (
	"fmt"

	"github.com/salernoelia/py-dialect-test/internal/shell"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:     "quiz <canton>",
	Aliases: []string{"translate"},
	Short:   "Translate the reference sentences into a canton's dialect",
	Long: `Show each reference sentence and read your translation into the chosen
canton's dialect from stdin. Answers are echoed back, not scored.

Example:
  dialect quiz zurich`,
	Args: cobra.ExactArgs(1),
	RunE: runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, args []string) error {
	corpus, _, err := loadCorpus()
	if err != nil {
		return err
	}

	canton, err := resolveRegion(corpus, args[0])
	if err != nil {
		return err
	}

	answers, err := shell.Quiz(cmd.InOrStdin(), cmd.OutOrStdout(), corpus, canton)
	if err != nil {
		return fmt.Errorf("running quiz: %w", err)
	}

	logger.Debug("quiz finished", "canton", canton, "answered", len(answers), "total", len(corpus.ReferencePhrases()))
	return nil
}
