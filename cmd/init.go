package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"synmut.dev/pkg/synmut/internal/fixtures"
)

const (
	fixturesExportName = configBaseName + ".fixtures.yaml"

	forceFlagName    = "force"
	fixturesFlagName = "fixtures"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default synmut.yaml configuration file",
		Long: `Create a synmut.yaml in the current working directory populated with the
current CLI defaults (target files, linter engine, logging) so it can be
edited manually.

With --fixtures the built-in snippet set is also written to ` + fixturesExportName + `
and referenced from fixtures.file, ready to be extended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool(forceFlagName)
			withFixtures, _ := cmd.Flags().GetBool(fixturesFlagName)

			targetPath := filepath.Join(configFolderPath, configFileName)
			if err := ensureWritable(targetPath, force); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			if withFixtures {
				fixturesPath := filepath.Join(configFolderPath, fixturesExportName)
				if err := exportFixtures(fixturesPath, force); err != nil {
					return err
				}

				viper.Set(fixturesFileKey, fixturesPath)
				cmd.Println("wrote", fixturesPath)
			}

			if err := viper.WriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("wrote", targetPath)

			return nil
		},
	}

	cmd.Flags().Bool(forceFlagName, false, "overwrite existing files")
	cmd.Flags().Bool(fixturesFlagName, false, "also export the built-in fixtures to "+fixturesExportName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// ensureWritable fails when path exists, unless force is set.
func ensureWritable(path string, force bool) error {
	if force {
		return nil
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%s already exists (use --%s to overwrite)", path, forceFlagName)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return err
	}
}

func exportFixtures(path string, force bool) error {
	if err := ensureWritable(path, force); err != nil {
		return fmt.Errorf("failed to write fixtures file: %w", err)
	}

	// #nosec G306 - the fixture file is meant to be edited and shared
	if err := os.WriteFile(path, fixtures.Source(), 0o644); err != nil {
		return fmt.Errorf("failed to write fixtures file: %w", err)
	}

	return nil
}
