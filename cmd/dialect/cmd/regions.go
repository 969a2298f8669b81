package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:     "regions [canton...]",
	Aliases: []string{"cantons"},
	Short:   "List cantons and their sample phrases",
	Long: `List the cantons in the corpus with each reference sentence and its
dialect translation. Pass canton names to show only those.

Example:
  dialect regions
  dialect regions bern`,
	RunE: runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	corpus, _, err := loadCorpus()
	if err != nil {
		return err
	}

	regions := corpus.Regions()
	if len(args) > 0 {
		regions = regions[:0]
		for _, name := range args {
			r, err := resolveRegion(corpus, name)
			if err != nil {
				return err
			}
			regions = append(regions, r)
		}
	}

	out := cmd.OutOrStdout()
	for i, r := range regions {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", r)

		phrases, err := corpus.Phrases(r)
		if err != nil {
			return err
		}

		width := 0
		for _, p := range phrases {
			width = max(width, runewidth.StringWidth(p.Reference))
		}
		for _, p := range phrases {
			fmt.Fprintf(out, "  %s → %s\n", runewidth.FillRight(p.Reference, width), p.Dialect)
		}
	}

	return nil
}
