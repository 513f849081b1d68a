package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/api/dto"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/export"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// BookingsHandler serves the bookings pages, receipts and exports.
type BookingsHandler struct {
	service *service.BookingService
	render  *Renderer
}

// NewBookingsHandler constructs a handler.
func NewBookingsHandler(svc *service.BookingService, render *Renderer) *BookingsHandler {
	return &BookingsHandler{service: svc, render: render}
}

// List renders the bookings table.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	page, err := h.service.ListPage(c.UserContext(), caller(c), strings.TrimSpace(c.Query("q")))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "bookings/list", fiber.Map{"Title": "Bookings", "Page": page})
}

// Detail renders one booking with its status form.
func (h *BookingsHandler) Detail(c *fiber.Ctx) error {
	return h.renderDetail(c, c.Params("id"), "")
}

func (h *BookingsHandler) renderDetail(c *fiber.Ctx, id, message string) error {
	booking, err := h.service.Detail(c.UserContext(), caller(c), id)
	if err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		return h.render.Redirect(c, "/dashboard/bookings", FlashError, msg)
	}
	return h.render.Dashboard(c, "bookings/detail", fiber.Map{
		"Title":    "Booking Details",
		"Booking":  booking,
		"Statuses": domain.BookingStatuses,
		"Error":    message,
	})
}

// UpdateStatus saves the status picked on the detail page.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.BookingStatusForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	if err := form.Validate(); err != nil {
		return h.renderDetail(c, id, "Select a valid booking status.")
	}
	if err := h.service.UpdateStatus(c.UserContext(), caller(c), id, form.Status); err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		return h.renderDetail(c, id, msg)
	}
	return h.render.Redirect(c, "/dashboard/bookings/"+id, FlashSuccess, "Booking status updated.")
}

// Receipt renders a printable receipt for one booking.
func (h *BookingsHandler) Receipt(c *fiber.Ctx) error {
	booking, err := h.service.Detail(c.UserContext(), caller(c), c.Params("id"))
	if err != nil {
		return err
	}
	receipt := export.BookingReceipt(booking)
	return h.render.Print(c, "bookings/receipts", fiber.Map{"Title": receipt.Title, "Receipts": []export.Receipt{receipt}})
}

// Receipts renders every booking's receipt on one printable page.
func (h *BookingsHandler) Receipts(c *fiber.Ctx) error {
	bookings, err := h.service.All(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return h.render.Print(c, "bookings/receipts", fiber.Map{"Title": "Booking Receipts", "Receipts": export.BookingReceipts(bookings)})
}

// Export downloads the bookings as a workbook.
func (h *BookingsHandler) Export(c *fiber.Ctx) error {
	bookings, err := h.service.All(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return sendSheets(c, "bookings", export.FormatXLSX, export.BookingsSheet(bookings))
}

// Payments renders the booking payments table.
func (h *BookingsHandler) Payments(c *fiber.Ctx) error {
	table, err := h.service.Payments(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "reports/table", fiber.Map{"Title": table.Title, "Tables": []view.Table{table}})
}
