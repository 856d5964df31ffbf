package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// CreateAccount opens an account and returns the identity assigned by the repository.
type CreateAccount struct {
	repo ports.AccountRepository
	log  *slog.Logger
}

func NewCreateAccount(repo ports.AccountRepository, log *slog.Logger) *CreateAccount {
	return &CreateAccount{repo: repo, log: orDiscard(log)}
}

var _ ports.CreateAccountUseCase = (*CreateAccount)(nil)

func (uc *CreateAccount) CreateAccount(ctx context.Context, ownerName string, initialBalance decimal.Decimal) (domain.AccountID, error) {
	acc, err := domain.NewAccount(ownerName, initialBalance)
	if err != nil {
		return 0, err
	}

	saved, err := uc.repo.Save(ctx, acc)
	if err != nil {
		uc.log.Error("account.save_failed", "owner", ownerName, "error", err)
		return 0, err
	}

	uc.log.Info("account.created", "id", saved.ID().String(), "owner", saved.OwnerName())
	return saved.ID(), nil
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return l
}
