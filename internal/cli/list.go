package cli

import (
	"github.com/spf13/cobra"

	"github.com/neolcr/patterns/internal/usecase"
)

func listCmd(opts *globalOpts) *cobra.Command {
	var category string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the demos in the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			demos, err := usecase.NewListDemos(a.catalog).Execute(category)
			if err != nil {
				return err
			}
			return printDemos(cmd.OutOrStdout(), demos, format)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list one category: behavioral|structural|solid|hexagonal|ddd|theory")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}
