package cmd

import (
	"github.com/spf13/cobra"
)

// indexCmd represents the index command.
var indexCmd = newIndexCmd()

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "List the project files coverage paths are resolved against",
		Long: `Walk the project root and list every file whose extension belongs to a
configured language, after exclusions.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Index(cmd.Context(), indexArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
