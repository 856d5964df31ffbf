package redisaccount

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// Repository stores each account as a hash <prefix>:<id>; identities come from INCR <prefix>:seq.
type Repository struct {
	rdb    redis.UniversalClient
	prefix string
}

type Option func(*Repository)

func WithPrefix(prefix string) Option {
	return func(r *Repository) {
		if p := strings.Trim(prefix, ":"); p != "" {
			r.prefix = p
		}
	}
}

func New(rdb redis.UniversalClient, opts ...Option) *Repository {
	r := &Repository{rdb: rdb, prefix: "patterns:accounts"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.AccountRepository = (*Repository)(nil)

func (r *Repository) seqKey() string { return r.prefix + ":seq" }

func (r *Repository) key(id domain.AccountID) string { return r.prefix + ":" + id.String() }

func (r *Repository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, &domain.OpError{
			Op:   "redisaccount.save",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("account is nil: %w", domain.ErrInvalidArgument),
		}
	}

	if !account.ID().IsSet() {
		n, err := r.rdb.Incr(ctx, r.seqKey()).Result()
		if err != nil {
			return nil, execErr("redisaccount.sequence", err)
		}
		account.AssignID(domain.AccountID(n))
	}

	err := r.rdb.HSet(ctx, r.key(account.ID()),
		"owner", account.OwnerName(),
		"balance", account.Balance().String(),
	).Err()
	if err != nil {
		return nil, execErr("redisaccount.save", err)
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	fields, err := r.rdb.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, execErr("redisaccount.find", err)
	}
	if len(fields) == 0 {
		return nil, &domain.OpError{
			Op:   "redisaccount.find",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("account %s: %w", id, domain.ErrNotFound),
		}
	}

	return decodeAccount(id, fields)
}

// decodeAccount rebuilds an account from its hash. A hash that breaks the
// account invariants is a storage fault, not bad caller input.
func decodeAccount(id domain.AccountID, fields map[string]string) (*domain.Account, error) {
	balance, err := decimal.NewFromString(fields["balance"])
	if err != nil {
		return nil, execErr("redisaccount.decode", err)
	}
	account, err := domain.RestoreAccount(id, fields["owner"], balance)
	if err != nil {
		return nil, execErr("redisaccount.decode", fmt.Errorf("account %s: %w", id, err))
	}
	return account, nil
}

func execErr(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
}
