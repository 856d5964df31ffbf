package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/neolcr/patterns/internal/domain"
)

type createAccountRequest struct {
	OwnerName      string           `json:"owner_name"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
}

type depositRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type accountResponse struct {
	ID        domain.AccountID `json:"id"`
	OwnerName string           `json:"owner_name"`
	Balance   decimal.Decimal  `json:"balance"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{ID: a.ID(), OwnerName: a.OwnerName(), Balance: a.Balance()}
}

func (h *handlers) createAccount(c *fiber.Ctx) error {
	var req createAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}

	initial := decimal.Zero
	if req.InitialBalance != nil {
		initial = *req.InitialBalance
	}

	ctx := c.UserContext()
	id, err := h.deps.CreateAccount.CreateAccount(ctx, req.OwnerName, initial)
	if err != nil {
		return err
	}

	acc, err := h.deps.GetAccount.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toAccountResponse(acc))
}

func (h *handlers) getAccount(c *fiber.Ctx) error {
	id, err := domain.ParseAccountID(c.Params("id"))
	if err != nil {
		return err
	}

	acc, err := h.deps.GetAccount.GetAccount(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toAccountResponse(acc))
}

func (h *handlers) deposit(c *fiber.Ctx) error {
	id, err := domain.ParseAccountID(c.Params("id"))
	if err != nil {
		return err
	}

	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Amount == nil {
		return badRequest("amount is required")
	}

	acc, err := h.deps.Deposit.Deposit(c.UserContext(), id, *req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(toAccountResponse(acc))
}
