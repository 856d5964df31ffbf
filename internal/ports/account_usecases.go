package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
)

// CreateAccountUseCase is the inbound port for opening an account.
type CreateAccountUseCase interface {
	CreateAccount(ctx context.Context, ownerName string, initialBalance decimal.Decimal) (domain.AccountID, error)
}

type DepositUseCase interface {
	Deposit(ctx context.Context, id domain.AccountID, amount decimal.Decimal) (*domain.Account, error)
}

type GetAccountUseCase interface {
	GetAccount(ctx context.Context, id domain.AccountID) (*domain.Account, error)
}
