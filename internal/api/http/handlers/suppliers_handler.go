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

// SuppliersHandler serves suppliers and the orders placed with them.
type SuppliersHandler struct {
	service *service.SupplierService
	render  *Renderer
}

// NewSuppliersHandler constructs a handler.
func NewSuppliersHandler(svc *service.SupplierService, render *Renderer) *SuppliersHandler {
	return &SuppliersHandler{service: svc, render: render}
}

// List renders the suppliers table.
func (h *SuppliersHandler) List(c *fiber.Ctx) error {
	page, err := h.service.ListPage(c.UserContext(), caller(c), strings.TrimSpace(c.Query("q")))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "suppliers/list", fiber.Map{"Title": "Suppliers", "Page": page})
}

// Delete removes a supplier after the browser confirmation.
func (h *SuppliersHandler) Delete(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.FormValue("q"))
	page, err := h.service.ListPage(c.UserContext(), caller(c), search)
	if err != nil {
		return err
	}
	if page.Error != "" {
		return h.render.Redirect(c, withSearch("/dashboard/suppliers", search), FlashError, page.Error)
	}
	if err := h.service.Delete(c.UserContext(), caller(c), page, c.Params("id")); err != nil {
		if apperrors.IsUnauthorized(err) {
			return err
		}
		return h.render.Dashboard(c, "suppliers/list", fiber.Map{"Title": "Suppliers", "Page": page})
	}
	return h.render.Redirect(c, withSearch("/dashboard/suppliers", search), FlashSuccess, "Supplier deleted successfully.")
}

// NewForm renders the add supplier form.
func (h *SuppliersHandler) NewForm(c *fiber.Ctx) error {
	form := dto.SupplierForm{Status: string(domain.SupplierStatusActive)}
	return h.renderForm(c, "Add Supplier", "/dashboard/suppliers/add", form, "")
}

// Create saves the add supplier form.
func (h *SuppliersHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "Add Supplier", "/dashboard/suppliers/add", func(in domain.SupplierInput) error {
		return h.service.Create(c.UserContext(), caller(c), in)
	}, "Supplier added successfully.")
}

// EditForm renders the edit supplier form.
func (h *SuppliersHandler) EditForm(c *fiber.Ctx) error {
	id := c.Params("id")
	supplier, err := h.service.Get(c.UserContext(), caller(c), id)
	if err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		return h.render.Redirect(c, "/dashboard/suppliers", FlashError, msg)
	}
	return h.renderForm(c, "Edit Supplier", "/dashboard/suppliers/edit/"+id, dto.SupplierFormFrom(supplier), "")
}

// Update saves the edit supplier form.
func (h *SuppliersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.save(c, "Edit Supplier", "/dashboard/suppliers/edit/"+id, func(in domain.SupplierInput) error {
		return h.service.Update(c.UserContext(), caller(c), id, in)
	}, "Supplier updated successfully.")
}

func (h *SuppliersHandler) save(c *fiber.Ctx, title, action string, write func(domain.SupplierInput) error, done string) error {
	var form dto.SupplierForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	if err := form.Validate(); err != nil {
		return h.renderForm(c, title, action, form, dto.Message(err))
	}
	if err := write(form.Input()); err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		form.Password = ""
		return h.renderForm(c, title, action, form, msg)
	}
	return h.render.Redirect(c, "/dashboard/suppliers", FlashSuccess, done)
}

func (h *SuppliersHandler) renderForm(c *fiber.Ctx, title, action string, form dto.SupplierForm, message string) error {
	return h.render.Dashboard(c, "suppliers/form", fiber.Map{
		"Title":    title,
		"Action":   action,
		"Form":     form,
		"Statuses": domain.SupplierStatuses,
		"Editing":  strings.Contains(action, "/edit/"),
		"Error":    message,
	})
}

// Orders renders the orders table.
func (h *SuppliersHandler) Orders(c *fiber.Ctx) error {
	page, err := h.service.OrdersPage(c.UserContext(), caller(c), strings.TrimSpace(c.Query("q")))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "orders/list", fiber.Map{"Title": "Orders", "Page": page})
}

// OrdersReceipt renders every order on one printable page.
func (h *SuppliersHandler) OrdersReceipt(c *fiber.Ctx) error {
	orders, err := h.service.Orders(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	var total float64
	for _, o := range orders {
		total += o.Amount.Float64()
	}
	return h.render.Print(c, "orders/receipt", fiber.Map{"Title": "Orders Receipt", "Orders": orders, "Total": total})
}

// ExportOrders downloads the orders as xlsx or csv.
func (h *SuppliersHandler) ExportOrders(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Params("format"))
	if err != nil {
		return apperrors.NewNotFound("export format", map[string]any{"format": c.Params("format")})
	}
	orders, err := h.service.Orders(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return sendSheets(c, "orders", format, export.OrdersSheet(orders))
}

// OrderPayments renders the order payments table.
func (h *SuppliersHandler) OrderPayments(c *fiber.Ctx) error {
	table, err := h.service.OrderPayments(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "reports/table", fiber.Map{"Title": table.Title, "Tables": []view.Table{table}})
}
