package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studydeck/internal/catalog"
)

var guidesCmd = &cobra.Command{
	Use:   "guides",
	Short: "List the guides shipped with this build",
	Long: `List every embedded guide with its content counts.

Loading validates the authored catalog, so a non-zero exit here means a
guide is malformed (empty category, out-of-range answer key, ...).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		for _, g := range cat.Guides {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", g.ID, g.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %d concepts in %d categories, %d questions, %d tools, %d risks\n",
				"", g.TotalItems(), len(g.Categories), len(g.Questions), len(g.Tools), len(g.Risks))
		}
		return nil
	},
}
