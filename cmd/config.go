package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"htmlreport.dev/pkg/htmlreport/internal/domain"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "htmlreport"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName       = "output"
	titleFlagName        = "title"
	descriptionFlagName  = "description"
	verbosityFlagName    = "verbosity"
	groupByFlagName      = "group-by"
	entryPackageFlagName = "entry-package"
	descriptionsFlagName = "descriptions"
	logFileFlagName      = "log-file"
	debugFlagName        = "debug"
	workDirFlagName      = "work-dir"
	forceFlagName        = "force"

	outputConfigKey       = "report.output"
	titleConfigKey        = "report.title"
	descriptionConfigKey  = "report.description"
	verbosityConfigKey    = "report.verbosity"
	groupByConfigKey      = "report.group_by"
	entryPackageConfigKey = "report.entry_package"
	descriptionsConfigKey = "report.descriptions"
	workDirConfigKey      = "run.work_dir"

	defaultOutput    = "report.html"
	defaultVerbosity = 1
	defaultGroupBy   = string(domain.GroupByPackage)

	envPrefix = "HTMLREPORT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".htmlreport.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, defaultOutput)
	viper.SetDefault(titleConfigKey, domain.DefaultTitle)
	viper.SetDefault(descriptionConfigKey, "")
	viper.SetDefault(verbosityConfigKey, defaultVerbosity)
	viper.SetDefault(groupByConfigKey, defaultGroupBy)
	viper.SetDefault(entryPackageConfigKey, domain.DefaultEntryModule)
	viper.SetDefault(descriptionsConfigKey, "")
	viper.SetDefault(workDirConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	readConfigFile()
}

// readConfigFile merges the config file, if there is one, over the defaults.
func readConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// The defaults above still apply.
		slog.Warn("ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

// reportArgsFromConfig collects the report settings after flags, env and
// config file have been merged.
func reportArgsFromConfig() domain.ReportArgs {
	return domain.ReportArgs{
		Output:       m.Path(viper.GetString(outputConfigKey)),
		Title:        viper.GetString(titleConfigKey),
		Description:  viper.GetString(descriptionConfigKey),
		Verbosity:    viper.GetInt(verbosityConfigKey),
		GroupBy:      domain.ParseGroupBy(viper.GetString(groupByConfigKey)),
		EntryModule:  viper.GetString(entryPackageConfigKey),
		Descriptions: m.Path(viper.GetString(descriptionsConfigKey)),
	}
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
// By default it logs at the configured level; if verbose is true it logs
// at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
