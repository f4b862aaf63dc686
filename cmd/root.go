package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studydeck/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "studydeck",
	Short: "Interactive learning guides in the terminal",
	Long:  "Studydeck — terminal dashboard of learning guides: concept checklists, reference tables, and self-quizzes. Progress is session-only by design.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(guidesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
