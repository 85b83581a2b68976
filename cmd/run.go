package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [files...]",
		Short: "Run the lint suite and lint real codebase files",
		Long:  runLongDescription,
		RunE:  runSuite,
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
