package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/neolcr/patterns/internal/domain"
)

// --- fakes shared by the tests in this package ---

type fakeCatalog struct {
	demos []domain.Demo
}

func (f fakeCatalog) List() []domain.Demo { return f.demos }

func (f fakeCatalog) Lookup(name string) (domain.Demo, error) {
	for _, d := range f.demos {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return domain.Demo{}, &domain.OpError{Op: "fake.lookup", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
}

type fakeStore struct {
	saved []domain.DemoReport
	err   error
}

func (s *fakeStore) SaveReport(r domain.DemoReport) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, r)
	return fmt.Sprintf("report-%d", len(s.saved)), nil
}

type fakeRepo struct {
	accounts map[domain.AccountID]*domain.Account
	next     domain.AccountID
	saveErr  error
	saves    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: map[domain.AccountID]*domain.Account{}, next: 1}
}

func (r *fakeRepo) Save(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saves++
	if !a.ID().IsSet() {
		a.AssignID(r.next)
		r.next++
	}
	r.accounts[a.ID()] = a.Clone()
	return a, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id domain.AccountID) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, &domain.OpError{Op: "fake.find", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return a.Clone(), nil
}

func echoDemo(name string, cat domain.Category, lines ...string) domain.Demo {
	return domain.Demo{
		Name:     name,
		Category: cat,
		Title:    name,
		Run: func(_ context.Context, w io.Writer) error {
			for _, l := range lines {
				fmt.Fprintln(w, l)
			}
			return nil
		},
	}
}

var errBoom = errors.New("boom")

func failingDemo(name string) domain.Demo {
	return domain.Demo{
		Name:     name,
		Category: domain.CategoryTheory,
		Run: func(_ context.Context, w io.Writer) error {
			fmt.Fprintln(w, "partial")
			return errBoom
		},
	}
}
