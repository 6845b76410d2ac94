package cmd

import (
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path> [paths...]",
		Short: "Resolve coverage paths against the project files",
		Long:  resolveLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := resolveArgs(args)
			if err != nil {
				return err
			}

			return workflow.Resolve(cmd.Context(), req)
		},
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
