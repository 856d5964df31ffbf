// Package catalog holds the registry of runnable demos.
package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// Registry is an in-memory ports.DemoCatalog. It is read-only once built.
type Registry struct {
	demos  []domain.Demo
	byName map[string]int
}

var _ ports.DemoCatalog = (*Registry)(nil)

func NewRegistry(demos ...domain.Demo) *Registry {
	r := &Registry{byName: make(map[string]int, len(demos))}
	for _, d := range demos {
		r.register(d)
	}
	slices.SortStableFunc(r.demos, func(a, b domain.Demo) int {
		if c := cmp.Compare(a.Category.Rank(), b.Category.Rank()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	for i, d := range r.demos {
		r.byName[key(d.Name)] = i
	}
	return r
}

func (r *Registry) register(d domain.Demo) {
	if d.Name == "" || d.Run == nil {
		panic(fmt.Sprintf("catalog: demo %q has no name or run func", d.Name))
	}
	if _, dup := r.byName[key(d.Name)]; dup {
		panic(fmt.Sprintf("catalog: duplicate demo %q", d.Name))
	}
	r.byName[key(d.Name)] = len(r.demos)
	r.demos = append(r.demos, d)
}

// List returns a copy, ordered by category then name.
func (r *Registry) List() []domain.Demo {
	return slices.Clone(r.demos)
}

func (r *Registry) Lookup(name string) (domain.Demo, error) {
	i, ok := r.byName[key(name)]
	if !ok {
		return domain.Demo{}, &domain.OpError{
			Op:   "catalog.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("demo %q: %w", name, domain.ErrNotFound),
		}
	}
	return r.demos[i], nil
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }
