package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/infra/memaccount"
	"github.com/neolcr/patterns/internal/usecase"
)

// HexagonalAccountDemo drives the account use cases through their ports,
// with the in-memory repository plugged in as the out-adapter.
func HexagonalAccountDemo(ctx context.Context, w io.Writer) error {
	repo := memaccount.New()
	create := usecase.NewCreateAccount(repo, nil)
	deposit := usecase.NewDeposit(repo, nil)

	id, err := create.CreateAccount(ctx, "Alice", decimal.NewFromInt(100))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Created account %s for Alice\n", id)

	acc, err := deposit.Deposit(ctx, id, decimal.RequireFromString("25.50"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Deposited 25.50, balance is now %s\n", acc.Balance().StringFixed(2))

	if _, err := deposit.Deposit(ctx, id, decimal.NewFromInt(-5)); err != nil {
		if !errors.Is(err, domain.ErrNonPositiveAmount) {
			return err
		}
		fmt.Fprintf(w, "Deposit of -5 rejected: %v\n", domain.ErrNonPositiveAmount)
	}
	return nil
}
