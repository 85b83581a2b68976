package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synmut.dev/pkg/synmut/internal/adapter"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "synmut", configBaseName)
	assert.Equal(t, "synmut.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "operator", operatorFlagName)
	assert.Equal(t, "files", filesConfigKey)
	assert.Equal(t, "fixtures.file", fixturesFileKey)
	assert.Equal(t, "mutations.operators", operatorsConfigKey)
	assert.Equal(t, "linter.engine", linterEngineKey)
	assert.Equal(t, "linter.eslint_bin", linterESLintBinKey)
	assert.Equal(t, "trace.enabled", traceEnabledConfigKey)
	assert.Equal(t, "SYNMUT", envPrefix)
	assert.Equal(t, []string{"./controllers/ai.js", "./app.js"}, defaultFiles)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	originalWriter := logWriter
	t.Cleanup(func() {
		slog.SetDefault(original)
		logWriter = originalWriter
	})

	logPath := filepath.Join(t.TempDir(), "synmut.log")
	configureLogger(logPath, true)

	slog.Debug("lint fixture", "id", "VALID_1")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "lint fixture")
	assert.Contains(t, string(contents), "id=VALID_1")
}

func TestLinterOptionsFromConfig(t *testing.T) {
	t.Cleanup(func() {
		viper.Set(linterEngineKey, defaultLinterEngine)
		viper.Set(linterESLintBinKey, defaultESLintBin)
	})

	opts := linterOptionsFromConfig()
	assert.Equal(t, adapter.EngineTreeSitter, opts.Engine)
	assert.Equal(t, "eslint", opts.ESLintBin)
	assert.NotEmpty(t, opts.Rules.Rules)

	viper.Set(linterEngineKey, " ESLint ")
	viper.Set(linterESLintBinKey, "./node_modules/.bin/eslint")

	opts = linterOptionsFromConfig()
	assert.Equal(t, adapter.EngineESLint, opts.Engine)
	assert.Equal(t, "./node_modules/.bin/eslint", opts.ESLintBin)
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b.log", firstNonBlank("", "  ", "b.log", "c.log"))
	assert.Equal(t, "", firstNonBlank("", " "))
}
