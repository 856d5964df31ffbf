package memaccount

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// Repository keeps accounts in a map. Identities come from an atomic sequence starting at 1.
type Repository struct {
	mu       sync.RWMutex
	accounts map[domain.AccountID]*domain.Account
	seq      atomic.Int64
}

func New() *Repository {
	return &Repository{accounts: make(map[domain.AccountID]*domain.Account)}
}

var _ ports.AccountRepository = (*Repository)(nil)

// Save assigns an identity when missing and stores a copy of the account.
func (r *Repository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &domain.OpError{
			Op:   "memaccount.save",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("account is nil: %w", domain.ErrInvalidArgument),
		}
	}

	if !account.ID().IsSet() {
		account.AssignID(domain.AccountID(r.seq.Add(1)))
	}

	r.mu.Lock()
	r.accounts[account.ID()] = account.Clone()
	r.mu.Unlock()

	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	acc, ok := r.accounts[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.OpError{
			Op:   "memaccount.find",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("account %s: %w", id, domain.ErrNotFound),
		}
	}
	return acc.Clone(), nil
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
