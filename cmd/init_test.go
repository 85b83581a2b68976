package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "synmut.dev/pkg/synmut/internal/domain/mocks"
	"synmut.dev/pkg/synmut/internal/fixtures"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	cmd, output := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))
	cmd.SetArgs([]string{"init"})

	err = cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, output.String(), configFileName)

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "controllers/ai.js")
	assert.Contains(t, string(contents), "engine: treesitter")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	cmd, _ := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))
	cmd.SetArgs([]string{"init"})

	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestInitCmd_ForceOverwritesExistingFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	cmd, _ := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))
	cmd.SetArgs([]string{"init", "--force"})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.NotContains(t, string(contents), "existing: true")
	assert.Contains(t, string(contents), "engine: treesitter")
}

func TestInitCmd_ExportsFixtures(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() {
		viper.Set(fixturesFileKey, defaultFixturesFile)
		require.NoError(t, os.Chdir(originalWD))
	})

	cmd, output := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))
	cmd.SetArgs([]string{"init", "--fixtures"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), fixturesExportName)

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), fixturesExportName)

	exported, err := fixtures.LoadFile(filepath.Join(tempDir, fixturesExportName))
	require.NoError(t, err)

	builtin, err := fixtures.Load()
	require.NoError(t, err)
	assert.Equal(t, builtin, exported)
}

func TestInitCmd_FixturesErrorWhenExportExists(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, fixturesExportName), []byte("seeds: []\n"), 0o644))

	cmd, _ := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))
	cmd.SetArgs([]string{"init", "--fixtures"})

	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write fixtures file")

	_, err = os.Stat(filepath.Join(tempDir, configFileName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
