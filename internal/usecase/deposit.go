package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// Deposit loads an account, applies the deposit and stores it back.
type Deposit struct {
	repo ports.AccountRepository
	log  *slog.Logger
}

func NewDeposit(repo ports.AccountRepository, log *slog.Logger) *Deposit {
	return &Deposit{repo: repo, log: orDiscard(log)}
}

var _ ports.DepositUseCase = (*Deposit)(nil)

func (uc *Deposit) Deposit(ctx context.Context, id domain.AccountID, amount decimal.Decimal) (*domain.Account, error) {
	acc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := acc.Deposit(amount); err != nil {
		uc.log.Warn("account.deposit_rejected", "id", id.String(), "amount", amount.String(), "error", err)
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, acc)
	if err != nil {
		return nil, err
	}

	uc.log.Info("account.deposited", "id", id.String(), "amount", amount.String(), "balance", saved.Balance().String())
	return saved, nil
}
