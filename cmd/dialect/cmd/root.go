// Package cmd contains all CLI commands for the dialect tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/salernoelia/py-dialect-test/internal/config"
	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"github.com/salernoelia/py-dialect-test/internal/shell"
	"github.com/salernoelia/py-dialect-test/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile string
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dialect",
	Short: "Swiss German dialect trainer - translate phrases and guess your canton",
	Long: `dialect is a small CLI for playing with Swiss German dialects.

It knows a handful of reference sentences and how each canton says them:
  - Choose a canton and translate the reference sentences into its dialect
  - Type sentences in your own dialect and see which canton they resemble

The guess is a naive character comparison, not linguistic analysis.

Running 'dialect' without arguments launches the interactive TUI, or the
numbered menu when input is not a terminal.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/dialect)")
	rootCmd.PersistentFlags().String("corpus", "", "corpus YAML file (default is <config>/corpus.yaml, then the built-in corpus)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.Flags().Bool("plain", false, "use the numbered menu instead of the TUI")

	viper.BindPFlag("corpus", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads ENV variables and sets up logging.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("DIALECT")
	viper.AutomaticEnv()

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadCorpus resolves and validates the corpus for this run.
func loadCorpus() (*dialect.Corpus, config.Source, error) {
	c, src, err := config.Resolve(viper.GetString("corpus"), getConfigDir())
	if err != nil {
		return nil, config.Source{}, fmt.Errorf("loading corpus: %w", err)
	}

	logger.Debug("corpus loaded", "source", src.String(), "regions", c.Len(), "references", len(c.ReferencePhrases()))
	return c, src, nil
}

// resolveRegion finds a region by name, ignoring case.
func resolveRegion(c *dialect.Corpus, name string) (dialect.Region, error) {
	if c.Has(dialect.Region(name)) {
		return dialect.Region(name), nil
	}
	for _, r := range c.Regions() {
		if strings.EqualFold(string(r), name) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, dialect.ErrNotFound)
}

// highlighter emphasizes the best region. fatih/color disables itself when
// stdout is not a terminal.
func highlighter() func(string) string {
	c := color.New(color.FgGreen, color.Bold)
	return func(s string) string {
		return c.Sprint(s)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runRoot launches the TUI, or the numbered menu when not attached to a terminal.
func runRoot(cmd *cobra.Command, args []string) error {
	corpus, src, err := loadCorpus()
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	if plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		logger.Debug("starting menu shell")
		s := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), corpus,
			shell.WithLogger(logger),
			shell.WithHighlight(highlighter()),
		)
		return s.Run()
	}

	source := src.String()
	if !src.Embedded {
		source = filepath.Base(src.Path)
	}

	p := tea.NewProgram(
		tui.NewApp(corpus, source),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
