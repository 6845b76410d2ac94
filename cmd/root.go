// Package cmd provides the root command and CLI setup for covmap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covmap.dev/pkg/covmap/internal/adapter"
	"covmap.dev/pkg/covmap/internal/controller"
	"covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var indexBuilder adapter.IndexBuilder
var pathListReader adapter.PathListReader
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write saved runs.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters indexed files.
var excludePatterns []string

var (
	rootDirFlag  string
	baseDirFlag  string
	languageFlag string
	strategyFlag string
	verboseFlag  bool
	logFileFlag  string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	configureLogger("", false)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	indexBuilder = adapter.NewLocalIndexBuilder(fsAdapter, globalLogger)
	pathListReader = adapter.NewLocalPathListReader(fsAdapter, os.Stdin)
	reportStore = adapter.NewReportStore(fsAdapter)
	workflow = domain.NewWorkflow(
		indexBuilder,
		pathListReader,
		reportStore,
		ui,
		globalLogger,
	)
}

const sentinelHelp = `Deterministic paths start with "/_/" or contain "C:\_\". They are stripped,
or joined to --base-dir for absolute lookups.`

const rootLongDescription = `Covmap maps the file paths written by code coverage tools onto the files
of a project, and refuses to guess when more than one file could match.

` + sentinelHelp

const resolveLongDescription = `Resolve the given coverage paths against the project file index.

` + sentinelHelp

const importLongDescription = `Resolve every path of a path list (one per line, "-" for stdin,
.gz and .zst are decompressed), print statistics and save the run.

` + sentinelHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "covmap",
		Short: "Coverage report path resolver",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with its persistent flags, for tests.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for saved resolution runs",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&rootDirFlag, rootFlagName, viper.GetString(rootConfigKey), "project directory to index")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVar(&baseDirFlag, baseDirFlagName, viper.GetString(baseDirConfigKey), "directory deterministic paths are joined to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(baseDirFlagName), baseDirConfigKey)

	cmd.PersistentFlags().StringVarP(&languageFlag, languageFlagName, "l", viper.GetString(languageConfigKey), "language key of the files coverage is imported for (empty matches all)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(languageFlagName), languageConfigKey)

	cmd.PersistentFlags().StringVarP(&strategyFlag, strategyFlagName, "s", viper.GetString(strategyConfigKey), "lookup strategy: contains, absolute or relative")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strategyFlagName), strategyConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func indexArgs() domain.IndexArgs {
	return domain.IndexArgs{
		Root:      m.Path(viper.GetString(rootConfigKey)),
		Languages: viper.GetStringMapStringSlice(languagesConfigKey),
		Exclude:   viper.GetStringSlice(excludeConfigKey),
	}
}

func resolveArgs(paths []string) (domain.ResolveArgs, error) {
	strategy, err := domain.ParseStrategy(viper.GetString(strategyConfigKey))
	if err != nil {
		return domain.ResolveArgs{}, err
	}

	return domain.ResolveArgs{
		IndexArgs: indexArgs(),
		Paths:     paths,
		Language:  m.Language(viper.GetString(languageConfigKey)),
		BaseDir:   viper.GetString(baseDirConfigKey),
		Strategy:  strategy,
	}, nil
}
