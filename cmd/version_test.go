package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synmut.dev/pkg/synmut/internal/adapter"
	m "synmut.dev/pkg/synmut/internal/model"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if !strings.Contains(output, "version: unknown") {
		assert.Contains(t, output, "synmut version")
		assert.Contains(t, output, "go version")
	}

	assert.Contains(t, output, "linter engine\t treesitter")
	assert.Contains(t, output, "ecmaVersion 2021, module")
	assert.Contains(t, output, "semi")
	assert.Contains(t, output, "no-undef")
}

func TestPrintLinterInfo(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	printLinterInfo(cmd, adapter.LinterOptions{
		Engine:    adapter.EngineESLint,
		ESLintBin: "./node_modules/.bin/eslint",
		Rules: adapter.RuleSet{
			EcmaVersion: 2020,
			SourceType:  "script",
			Rules: []adapter.Rule{
				{ID: "semi", Severity: m.SeverityError},
				{ID: "quotes", Severity: m.SeverityOff},
				{ID: "indent", Severity: m.SeverityWarning},
			},
		},
	})

	output := out.String()
	assert.Contains(t, output, "eslint (./node_modules/.bin/eslint)")
	assert.Contains(t, output, "ecmaVersion 2020, script")
	assert.Contains(t, output, "semi, indent")
	assert.NotContains(t, output, "quotes")
}
