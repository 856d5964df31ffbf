package ports

import (
	"context"

	"github.com/neolcr/patterns/internal/domain"
)

// AccountRepository is the outbound port of the account slice.
// Save assigns an identity to accounts that do not have one yet.
type AccountRepository interface {
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
}
