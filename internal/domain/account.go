package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrBlankOwner        = errors.New("owner name is blank")
	ErrNegativeBalance   = errors.New("balance is negative")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// AccountID identifies a persisted account. The zero value means "not yet persisted".
type AccountID int64

func (id AccountID) IsSet() bool { return id != 0 }

func (id AccountID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseAccountID parses a positive decimal identity.
func ParseAccountID(s string) (AccountID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, &OpError{
			Op:   "account.parse_id",
			Kind: KindInvalidArgument,
			Err:  ErrInvalidArgument,
		}
	}
	return AccountID(n), nil
}

// Account is the aggregate of the hexagonal slice.
type Account struct {
	id      AccountID
	owner   string
	balance decimal.Decimal
}

// RestoreAccount rebuilds an account from storage, enforcing the same invariants as NewAccount.
func RestoreAccount(id AccountID, owner string, balance decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, invalidAccount("account.new", ErrBlankOwner)
	}
	if balance.IsNegative() {
		return nil, invalidAccount("account.new", ErrNegativeBalance)
	}
	return &Account{id: id, owner: owner, balance: balance}, nil
}

// NewAccount creates an account without identity; the repository assigns one on save.
func NewAccount(owner string, initial decimal.Decimal) (*Account, error) {
	return RestoreAccount(0, owner, initial)
}

func (a *Account) ID() AccountID { return a.id }

func (a *Account) OwnerName() string { return a.owner }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit adds amount to the balance. Non-positive amounts are rejected.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidAccount("account.deposit", ErrNonPositiveAmount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// AssignID sets the identity only once; later calls are ignored.
func (a *Account) AssignID(id AccountID) {
	if !a.id.IsSet() {
		a.id = id
	}
}

// Equal compares identities. Unpersisted accounts are never equal to anything but themselves.
func (a *Account) Equal(other *Account) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return a.id.IsSet() && a.id == other.id
}

// Clone returns an independent copy.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

func invalidAccount(op string, err error) error {
	return &OpError{Op: op, Kind: KindInvalidArgument, Err: err}
}
