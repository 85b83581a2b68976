package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"synmut.dev/pkg/synmut/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "synmut"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	operatorFlagName = "operator"
	verboseFlagName  = "verbose"

	filesConfigKey        = "files"
	fixturesFileKey       = "fixtures.file"
	operatorsConfigKey    = "mutations.operators"
	linterEngineKey       = "linter.engine"
	linterESLintBinKey    = "linter.eslint_bin"
	traceEnabledConfigKey = "trace.enabled"

	defaultFixturesFile = ""
	defaultLinterEngine = adapter.EngineTreeSitter
	defaultESLintBin    = "eslint"
	defaultTraceEnabled = false

	envPrefix = "SYNMUT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".synmut.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultFiles are the real codebase files linted after the fixture suite.
var defaultFiles = []string{"./controllers/ai.js", "./app.js"}

var globalLogger *slog.Logger

// configReadErr is set when synmut.yaml exists but cannot be parsed. It is
// logged once the logger is configured.
var configReadErr error

// logWriter is the rotating log file once configureLogger has run.
var logWriter io.Writer = io.Discard

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(filesConfigKey, defaultFiles)
	viper.SetDefault(fixturesFileKey, defaultFixturesFile)
	viper.SetDefault(operatorsConfigKey, []string{})
	viper.SetDefault(linterEngineKey, defaultLinterEngine)
	viper.SetDefault(linterESLintBinKey, defaultESLintBin)
	viper.SetDefault(traceEnabledConfigKey, defaultTraceEnabled)

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
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		configReadErr = err
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

// configureLogger points the global slog logger at a rotating log file.
//
// By default it logs at log.level (Info); if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	logPath = firstNonBlank(logPath, viper.GetString(logFilenameKey), defaultLogFilename)

	level := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
	}

	writer := newLogWriter(logPath)
	logWriter = writer

	globalLogger = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(globalLogger)
}

func newLogWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

// linterOptionsFromConfig reads the engine selection from config and env.
func linterOptionsFromConfig() adapter.LinterOptions {
	return adapter.LinterOptions{
		Engine:    strings.ToLower(strings.TrimSpace(viper.GetString(linterEngineKey))),
		ESLintBin: viper.GetString(linterESLintBinKey),
		Rules:     adapter.DefaultRuleSet(),
	}
}
