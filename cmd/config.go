package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	"cleanup.dev/pkg/cleanup/internal/domain"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cleanup"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	pathFlagName           = "path"
	verboseFlagName        = "verbose"
	commentsFlagName       = "comments"
	consoleFlagName        = "console"
	consoleExcludeFlagName = "console-exclude"
	emojisFlagName         = "emojis"
	allFlagName            = "all"
	preserveJSDocFlagName  = "preserve-jsdoc"
	preserveLicFlagName    = "preserve-license"
	dryRunFlagName         = "dry-run"
	diffFlagName           = "diff"
	noCheckpointFlagName   = "no-checkpoint"
	retentionFlagName      = "retention"
	parallelFlagName       = "parallel"
	extensionsFlagName     = "ext"
	ignoreFlagName         = "ignore"

	pathKey              = "path"
	commentsKey          = "comments"
	emojisKey            = "emojis"
	consoleRemoveKey     = "console.remove"
	consoleExcludeKey    = "console.exclude"
	preserveJSDocKey     = "preserve.jsdoc"
	preserveLicenseKey   = "preserve.license"
	extensionsKey        = "files.extensions"
	ignoreKey            = "files.ignore"
	checkpointEnabledKey = "checkpoint.enabled"
	retentionKey         = "checkpoint.retention"
	parallelKey          = "run.parallel"
	dryRunKey            = "dry_run"
	retainLinesKey       = "output.retain_lines"
	diffKey              = "output.diff"

	defaultPath            = "."
	defaultComments        = false
	defaultEmojis          = false
	defaultConsoleRemove   = string(m.ConsoleNone)
	defaultPreserveJSDoc   = false
	defaultPreserveLicense = true
	defaultCheckpoint      = true
	defaultRetention       = domain.DefaultRetention
	defaultParallel        = 1
	defaultRetainLines     = true

	envPrefix = "CLEANUP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cleanup.log"
	defaultLogLevel      = int(slog.LevelInfo)
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
	viper.SetDefault(pathKey, defaultPath)
	viper.SetDefault(commentsKey, defaultComments)
	viper.SetDefault(emojisKey, defaultEmojis)
	viper.SetDefault(consoleRemoveKey, defaultConsoleRemove)
	viper.SetDefault(consoleExcludeKey, []string{})
	viper.SetDefault(preserveJSDocKey, defaultPreserveJSDoc)
	viper.SetDefault(preserveLicenseKey, defaultPreserveLicense)
	viper.SetDefault(extensionsKey, adapter.DefaultExtensions)
	viper.SetDefault(ignoreKey, []string{})
	viper.SetDefault(checkpointEnabledKey, defaultCheckpoint)
	viper.SetDefault(retentionKey, defaultRetention)
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(dryRunKey, false)
	viper.SetDefault(retainLinesKey, defaultRetainLines)
	viper.SetDefault(diffKey, false)

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
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "warning: could not load %s: %v\n", configFileName, err)
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
// By default it logs at Info; if verbose is true it logs at Debug.
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

// runConfig is the resolved, validated configuration of a clean run.
type runConfig struct {
	Root       string   `validate:"required"`
	Extensions []string `validate:"required,min=1,dive,required"`
	Retention  int      `validate:"min=1"`
	Parallel   int      `validate:"min=1,max=256"`
}

func (c runConfig) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("invalid configuration: %s is not a directory", c.Root)
	}

	return nil
}

// consoleSelectionFromConfig accepts both `remove: all` and a YAML list of
// method names.
func consoleSelectionFromConfig() m.ConsoleSelection {
	switch viper.Get(consoleRemoveKey).(type) {
	case []interface{}, []string:
		return m.ConsoleSelection{Mode: m.ConsoleSet, Methods: viper.GetStringSlice(consoleRemoveKey)}
	}

	return m.ParseConsoleSelection(viper.GetString(consoleRemoveKey))
}

// splitListValues flattens comma separated entries of a string slice.
func splitListValues(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, m.SplitList(v)...)
	}

	return out
}
