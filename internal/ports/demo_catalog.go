package ports

import "github.com/neolcr/patterns/internal/domain"

// DemoCatalog exposes the registered demos.
type DemoCatalog interface {
	List() []domain.Demo
	Lookup(name string) (domain.Demo, error)
}
