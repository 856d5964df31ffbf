package usecase

import (
	"fmt"
	"strings"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

type ListDemos struct {
	catalog ports.DemoCatalog
}

func NewListDemos(c ports.DemoCatalog) *ListDemos {
	return &ListDemos{catalog: c}
}

// Execute returns every demo, or only those of category when it is non-empty.
func (uc *ListDemos) Execute(category string) ([]domain.Demo, error) {
	all := uc.catalog.List()
	if strings.TrimSpace(category) == "" {
		return all, nil
	}

	cat, ok := domain.ParseCategory(category)
	if !ok {
		return nil, &domain.OpError{
			Op:   "usecase.list_demos",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("unknown category %q: %w", category, domain.ErrInvalidArgument),
		}
	}

	out := make([]domain.Demo, 0, len(all))
	for _, d := range all {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out, nil
}
