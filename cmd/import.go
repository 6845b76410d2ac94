package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covmap.dev/pkg/covmap/internal/adapter"
	"covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

var runParallelFlag int

// importCmd represents the import command.
var importCmd = newImportCmd()

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [path-list]",
		Short: "Resolve a list of coverage paths and save the run",
		Long:  importLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := m.Path(adapter.StdinSource)
			if len(args) == 1 {
				source = m.Path(args[0])
			}

			req, err := resolveArgs(nil)
			if err != nil {
				return err
			}

			return workflow.Import(cmd.Context(), domain.ImportArgs{
				ResolveArgs: req,
				Source:      source,
				Reports:     m.Path(viper.GetString(outputFlagName)),
				Threads:     viper.GetInt(runParallelConfigKey),
			})
		},
	}

	configureImportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func configureImportFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers resolving paths")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
