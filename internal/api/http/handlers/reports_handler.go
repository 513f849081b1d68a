package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/service"
)

const activityLimit = 100

// ReportsHandler serves the summary, report tables and the audit trail.
type ReportsHandler struct {
	reports  *service.ReportService
	activity *service.ActivityService
	render   *Renderer
}

// NewReportsHandler constructs a handler.
func NewReportsHandler(reports *service.ReportService, activity *service.ActivityService, render *Renderer) *ReportsHandler {
	return &ReportsHandler{reports: reports, activity: activity, render: render}
}

// Summary renders the dashboard landing page.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	page, err := h.reports.Daily(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "reports/summary", fiber.Map{"Title": "Dashboard", "Page": page})
}

// Reports renders the daily report with every report table under it.
func (h *ReportsHandler) Reports(c *fiber.Ctx) error {
	page, err := h.reports.Daily(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	tables, err := h.reports.Tables(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "reports/reports", fiber.Map{"Title": "Reports", "Page": page, "Tables": tables})
}

// Activity renders the most recent admin actions.
func (h *ReportsHandler) Activity(c *fiber.Ctx) error {
	page := h.activity.Recent(c.UserContext(), activityLimit)
	return h.render.Dashboard(c, "activity/list", fiber.Map{"Title": "Activity", "Page": page})
}
