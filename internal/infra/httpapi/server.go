// Package httpapi is the HTTP in-adapter: it exposes the account use cases and
// the demo catalogue as a small JSON API on fiber.
package httpapi

import (
	"context"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

type DemoLister interface {
	Execute(category string) ([]domain.Demo, error)
}

type DemoRunner interface {
	Execute(ctx context.Context, name string) (domain.DemoReport, string, error)
}

// Deps are the driving ports the API calls into.
type Deps struct {
	CreateAccount ports.CreateAccountUseCase
	Deposit       ports.DepositUseCase
	GetAccount    ports.GetAccountUseCase
	ListDemos     DemoLister
	RunDemo       DemoRunner
	Log           *slog.Logger
}

// New builds the fiber app with every route mounted under /v1.
func New(d Deps) *fiber.App {
	if d.Log == nil {
		d.Log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "patterns",
		ErrorHandler:          errorHandler(d.Log),
	})
	app.Use(recover.New())
	app.Use(cors.New())

	h := &handlers{deps: d}

	api := app.Group("/v1")
	api.Get("/health", h.health)

	api.Post("/accounts", h.createAccount)
	api.Get("/accounts/:id", h.getAccount)
	api.Post("/accounts/:id/deposits", h.deposit)

	api.Get("/demos", h.listDemos)
	api.Post("/demos/:name/run", h.runDemo)

	return app
}

type handlers struct {
	deps Deps
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
