package tui

import (
	"context"
	"log/slog"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

// DemoRunner is satisfied by usecase.RunDemo.
type DemoRunner interface {
	Execute(ctx context.Context, name string) (domain.DemoReport, string, error)
}

type Deps struct {
	Catalog ports.DemoCatalog
	Runner  DemoRunner

	// Root is shown in the header; empty when no patterns.yaml was found.
	Root string

	Logger *slog.Logger
	Debug  bool
}
