package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"synmut.dev/pkg/synmut/internal/domain"
	"synmut.dev/pkg/synmut/internal/domain/mutagens"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated mutations without linting them",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadFixtures()
			if err != nil {
				return err
			}

			operators, err := mutagens.Resolve(viper.GetStringSlice(operatorsConfigKey)...)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Fixtures:  store,
				Operators: operators,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
