package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/salernoelia/py-dialect-test/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in corpus to your config directory",
	Long: `Write the built-in corpus to corpus.yaml in your config directory.

Edit the file to add cantons or sentences; it is picked up automatically on
the next run. Every canton must translate the same reference sentences.

With --corpus, the given file is validated and installed instead.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing corpus file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.CorpusFile)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("corpus file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if custom := viper.GetString("corpus"); custom != "" {
		c, err := config.LoadCorpus(custom)
		if err != nil {
			return fmt.Errorf("%s: %w", custom, err)
		}
		if err := config.SaveCorpus(path, c); err != nil {
			return err
		}
	} else if err := os.WriteFile(path, config.DefaultCorpusYAML(), 0644); err != nil {
		return fmt.Errorf("writing corpus file: %w", err)
	}

	logger.Debug("corpus written", "path", path)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to add your own cantons and sentences")
	fmt.Fprintln(out, "  2. Run 'dialect regions' to check the corpus loads")
	fmt.Fprintln(out, "  3. Run 'dialect' to start translating")

	return nil
}
