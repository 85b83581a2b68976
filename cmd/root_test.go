package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"synmut.dev/pkg/synmut/internal/domain"
	domainmocks "synmut.dev/pkg/synmut/internal/domain/mocks"
	m "synmut.dev/pkg/synmut/internal/model"
)

// newTestRootCmd builds a fresh command tree wired to mockWorkflow and keeps
// the log file inside a temp dir.
func newTestRootCmd(t *testing.T, mockWorkflow domain.Workflow) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Setenv("SYNMUT_LOG_FILENAME", filepath.Join(t.TempDir(), "synmut.log"))

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newRunCmd(), newListCmd(), newInitCmd(), newVersionCmd())

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, output
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"./app.js"}, []m.Path{m.Path("./app.js")}},
		{
			"multiple",
			[]string{"./controllers/ai.js", "./app.js", "./lib"},
			[]m.Path{m.Path("./controllers/ai.js"), m.Path("./app.js"), m.Path("./lib")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "synmut", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.RunE)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, output := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))

	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "remove-semicolons")
}

func TestRootCmd_NoArgsRunsSuite(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Fixtures != nil &&
			len(args.Fixtures.Valid) > 0 &&
			len(args.Operators) == 8 &&
			assert.ObjectsAreEqual([]m.Path{"./controllers/ai.js", "./app.js"}, args.Files)
	})).Return(nil)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	cmd, _ := newTestRootCmd(t, domainmocks.NewMockWorkflow(t))

	cmd.SetArgs([]string{"app.js"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCmd_RunErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(errors.New("run: linter tooling failure"))

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linter tooling failure")
}

func TestRootCmd_LinterConfigError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	originalErr := linterErr
	linterErr = errors.New("unknown linter engine \"jslint\"")
	defer func() { linterErr = originalErr }()

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jslint")
}

func TestLoadFixtures(t *testing.T) {
	t.Cleanup(func() { viper.Set(fixturesFileKey, defaultFixturesFile) })

	t.Run("embedded set by default", func(t *testing.T) {
		viper.Set(fixturesFileKey, "")

		store, err := loadFixtures()
		require.NoError(t, err)
		assert.NotEmpty(t, store.Valid)
		assert.NotEmpty(t, store.Invalid)
	})

	t.Run("file from config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.yaml")
		require.NoError(t, os.WriteFile(path, []byte("valid:\n  - const a = 1;\ninvalid:\n  - const = 1;\n"), 0o600))
		viper.Set(fixturesFileKey, path)

		store, err := loadFixtures()
		require.NoError(t, err)
		assert.Equal(t, []m.Snippet{"const a = 1;"}, store.Valid)
		assert.Equal(t, []m.Snippet{"const = 1;"}, store.Invalid)
	})

	t.Run("missing file", func(t *testing.T) {
		viper.Set(fixturesFileKey, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := loadFixtures()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load fixtures")
	})
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, linter)
	assert.NotNil(t, orchestrator)
	assert.NotNil(t, mutagen)
	assert.NotNil(t, workflow)
	assert.NoError(t, linterErr)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
