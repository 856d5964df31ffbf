package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neolcr/patterns/internal/domain"
)

type runResponse struct {
	ReportID string `json:"report_id,omitempty"`
	domain.DemoReport
}

func (h *handlers) listDemos(c *fiber.Ctx) error {
	demos, err := h.deps.ListDemos.Execute(c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(demos)
}

// runDemo answers 200 with the report even when the demo itself failed;
// the failure is carried in the report's error field.
func (h *handlers) runDemo(c *fiber.Ctx) error {
	report, id, err := h.deps.RunDemo.Execute(c.UserContext(), c.Params("name"))
	if err != nil && report.Name == "" {
		return err
	}
	if err != nil && report.Error == "" {
		h.deps.Log.Warn("report.save_failed", "demo", report.Name, "error", err)
	}
	return c.JSON(runResponse{ReportID: id, DemoReport: report})
}
