package memaccount

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
)

func newAccount(t *testing.T, owner string) *domain.Account {
	t.Helper()
	acc, err := domain.NewAccount(owner, decimal.NewFromInt(5))
	if err != nil {
		t.Fatal(err)
	}
	return acc
}

func TestSave_AssignsSequentialIDs(t *testing.T) {
	repo := New()
	ctx := context.Background()

	a, err := repo.Save(ctx, newAccount(t, "Alice"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, _ := repo.Save(ctx, newAccount(t, "Bob"))

	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID(), b.ID())
	}
}

func TestSave_ExistingIdentityUpserts(t *testing.T) {
	repo := New()
	ctx := context.Background()

	acc, _ := repo.Save(ctx, newAccount(t, "Alice"))
	if err := acc.Deposit(decimal.NewFromInt(10)); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Save(ctx, acc); err != nil {
		t.Fatal(err)
	}

	if repo.Len() != 1 {
		t.Fatalf("expected a single stored account, got %d", repo.Len())
	}
	got, err := repo.FindByID(ctx, acc.ID())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Balance().Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected 15, got %s", got.Balance())
	}
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	repo := New()
	ctx := context.Background()
	acc, _ := repo.Save(ctx, newAccount(t, "Alice"))

	got, _ := repo.FindByID(ctx, acc.ID())
	_ = got.Deposit(decimal.NewFromInt(100))

	again, _ := repo.FindByID(ctx, acc.ID())
	if !again.Balance().Equal(decimal.NewFromInt(5)) {
		t.Fatalf("stored account must not change without Save, got %s", again.Balance())
	}
}

func TestFindByID_NotFound(t *testing.T) {
	_, err := New().FindByID(context.Background(), 42)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestSave_NilAccount(t *testing.T) {
	_, err := New().Save(context.Background(), nil)
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestSave_ConcurrentIDsAreUnique(t *testing.T) {
	repo := New()
	ctx := context.Background()

	const n = 64
	ids := make(chan domain.AccountID, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, _ := domain.NewAccount("x", decimal.Zero)
			saved, err := repo.Save(ctx, acc)
			if err != nil {
				t.Error(err)
				return
			}
			ids <- saved.ID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[domain.AccountID]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n || repo.Len() != n {
		t.Fatalf("expected %d accounts, got %d (stored %d)", n, len(seen), repo.Len())
	}
}

func TestSave_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Save(ctx, newAccount(t, "Alice")); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
