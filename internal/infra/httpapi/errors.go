package httpapi

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/neolcr/patterns/internal/domain"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// statusFor maps error kinds onto HTTP statuses.
func statusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// publicMessage keeps internal details out of 500 responses.
func publicMessage(err error, status int) string {
	if status >= fiber.StatusInternalServerError {
		return "internal error"
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err.Error()
	}
	return err.Error()
}

func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("http.request_failed", "method", c.Method(), "path", c.Path(), "error", err)
		} else {
			log.Warn("http.request_rejected", "method", c.Method(), "path", c.Path(), "status", status, "error", err)
		}
		return c.Status(status).JSON(errorBody{
			Error: publicMessage(err, status),
			Kind:  string(domain.KindOf(err)),
		})
	}
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
