package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/usecase"
)

func accountCmd(opts *globalOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "account",
		Short: "Drive the hexagonal account slice",
	}

	c.AddCommand(accountCreateCmd(opts))
	return c
}

func accountCreateCmd(opts *globalOpts) *cobra.Command {
	var owner string
	var balance string
	var store string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account through the CreateAccount use case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			initial, err := decimal.NewFromString(balance)
			if err != nil {
				return &domain.OpError{
					Op:   "cli.account_create",
					Kind: domain.KindInvalidArgument,
					Err:  fmt.Errorf("invalid balance %q: %w", balance, domain.ErrInvalidArgument),
				}
			}

			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			repo, err := a.accountRepo(cmd.Context(), store)
			if err != nil {
				return err
			}

			id, err := usecase.NewCreateAccount(repo, a.log).CreateAccount(cmd.Context(), owner, initial)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s for %s (balance %s)\n", id, owner, initial.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Account owner name (required)")
	cmd.Flags().StringVar(&balance, "balance", "0", "Initial balance")
	cmd.Flags().StringVar(&store, "store", "", "Account store: memory|redis (defaults to config)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
