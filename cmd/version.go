package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"synmut.dev/pkg/synmut/internal/adapter"
	m "synmut.dev/pkg/synmut/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the synmut build version, the Go version, the linter engine and the rules it enforces.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
			} else {
				cmd.Println("synmut version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			}

			printLinterInfo(cmd, linterOptionsFromConfig())
		},
	}
}

// printLinterInfo describes the engine a run would use and its enabled rules.
func printLinterInfo(cmd *cobra.Command, opts adapter.LinterOptions) {
	engine := opts.Engine
	if engine == "" {
		engine = adapter.EngineTreeSitter
	}

	if engine == adapter.EngineESLint {
		engine += " (" + opts.ESLintBin + ")"
	}

	cmd.Println("linter engine\t", engine)
	cmd.Printf("parser\t\t ecmaVersion %d, %s\n", opts.Rules.EcmaVersion, opts.Rules.SourceType)

	ids := make([]string, 0, len(opts.Rules.Rules))
	for _, rule := range opts.Rules.Rules {
		if rule.Severity != m.SeverityOff {
			ids = append(ids, rule.ID)
		}
	}

	cmd.Println("rules\t\t", strings.Join(ids, ", "))
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
