package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "covmap"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	rootFlagName        = "root"
	baseDirFlagName     = "base-dir"
	languageFlagName    = "language"
	strategyFlagName    = "strategy"
	runParallelFlagName = "parallel"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	runParallelConfigKey = "run.parallel"
	strategyConfigKey    = "run.strategy"
	excludeConfigKey     = "paths.exclude"
	rootConfigKey        = "project.root"
	baseDirConfigKey     = "project.base_dir"
	languageConfigKey    = "language"
	languagesConfigKey   = "index.languages"

	defaultReportsDir  = ".covmap-reports"
	defaultRunParallel = 1
	defaultRoot        = "."
	defaultLanguage    = "cs"
	defaultStrategy    = "contains"

	envPrefix = "COVMAP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".covmap.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultLanguages maps language keys to the file extensions indexed for them.
var defaultLanguages = map[string][]string{
	"cs":    {".cs"},
	"vbnet": {".vb"},
}

var (
	globalLogger *slog.Logger
	logLevel     = new(slog.LevelVar)
	logWriter    = &lumberjack.Logger{}
)

func init() {
	_ = loadDotEnv(filepath.Join(configFolderPath, dotEnvFileName))

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(strategyConfigKey, defaultStrategy)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(baseDirConfigKey, "")
	viper.SetDefault(languageConfigKey, defaultLanguage)
	viper.SetDefault(languagesConfigKey, defaultLanguages)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// loadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug. The logger is
// created once; later calls only change its level and target file.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo))
	}

	if logWriter.Filename != logPath {
		_ = logWriter.Close()
	}

	logWriter.Filename = logPath
	logWriter.MaxSize = viper.GetInt(logMaxSizeKey)
	logWriter.MaxBackups = viper.GetInt(logMaxBackupsKey)
	logWriter.MaxAge = viper.GetInt(logMaxAgeKey)
	logWriter.Compress = viper.GetBool(logCompressKey)

	if globalLogger != nil {
		return
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
