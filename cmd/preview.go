package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studydeck/internal/catalog"
	"github.com/abhisek/studydeck/internal/dashboard"
)

var previewCmd = &cobra.Command{
	Use:   "preview <guide-id>",
	Short: "Print a guide's content without the TUI",
	Long: `Dump a guide's checklist, tables, and quiz as plain text.

This is a stateless authoring tool: useful for proofreading guide YAML
and for diffing content between builds. Nothing is tracked or stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("answers", false, "Mark the correct quiz options")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	g, ok := cat.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown guide %q (try 'studydeck guides')", args[0])
	}
	showAnswers, _ := cmd.Flags().GetBool("answers")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s — %s\n\n", g.Title, g.Tagline)

	fmt.Fprintln(out, "CONCEPTS")
	for _, c := range g.Categories {
		fmt.Fprintf(out, "  %s\n", c.Category)
		for _, item := range c.Items {
			fmt.Fprintf(out, "    [ ] %s\n", item)
		}
	}

	if len(g.Tools) > 0 {
		fmt.Fprintln(out, "\nTOOLS")
		for _, tr := range g.Tools {
			fmt.Fprintf(out, "  %-22s %5s  %s\n", tr.Name, tr.Score, tr.Strength)
		}
	}

	if len(g.Risks) > 0 {
		fmt.Fprintln(out, "\nRISKS")
		for _, rr := range g.Risks {
			fmt.Fprintf(out, "  %-26s %-9s %s\n", rr.Name, rr.Severity, rr.Detail)
		}
	}

	fmt.Fprintln(out, "\nQUIZ")
	for qi, q := range g.Questions {
		fmt.Fprintf(out, "  %d. %s\n", qi+1, q.Prompt)
		for oi, opt := range q.Options {
			mark := " "
			if showAnswers && dashboard.HighlightFor(oi, q.CorrectIndex, 0, false, true) == dashboard.HighlightCorrect {
				mark = "✓"
			}
			fmt.Fprintf(out, "   %s %s) %s\n", mark, dashboard.OptionLabel(oi), opt)
		}
	}
	return nil
}
