package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/api/dto"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// StaffHandler manages employees and their categories.
type StaffHandler struct {
	service *service.StaffService
	render  *Renderer
}

// NewStaffHandler constructs a handler.
func NewStaffHandler(svc *service.StaffService, render *Renderer) *StaffHandler {
	return &StaffHandler{service: svc, render: render}
}

// List renders the staff table filtered by ?q=.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	page, err := h.service.ListPage(c.UserContext(), caller(c), strings.TrimSpace(c.Query("q")))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "staff/list", fiber.Map{"Title": "Staff List", "Page": page})
}

// Delete removes a staff member after the browser confirmation.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.FormValue("q"))
	page, err := h.service.ListPage(c.UserContext(), caller(c), search)
	if err != nil {
		return err
	}
	if page.Error != "" {
		return h.render.Redirect(c, withSearch("/dashboard/staff", search), FlashError, page.Error)
	}
	if err := h.service.Delete(c.UserContext(), caller(c), page, c.Params("id")); err != nil {
		if apperrors.IsUnauthorized(err) {
			return err
		}
		return h.render.Dashboard(c, "staff/list", fiber.Map{"Title": "Staff List", "Page": page})
	}
	return h.render.Redirect(c, withSearch("/dashboard/staff", search), FlashSuccess, "Staff deleted successfully.")
}

// NewForm renders the add staff form.
func (h *StaffHandler) NewForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Add Staff", "/dashboard/add_staff", dto.StaffForm{}, "")
}

// Create saves the add staff form.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var form dto.StaffForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	if err := form.Validate(); err != nil {
		return h.renderForm(c, "Add Staff", "/dashboard/add_staff", form, dto.Message(err))
	}
	in, err := form.Input()
	if err != nil {
		return h.renderForm(c, "Add Staff", "/dashboard/add_staff", form, err.Error())
	}
	if err := h.service.Create(c.UserContext(), caller(c), in); err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		form.Password = ""
		return h.renderForm(c, "Add Staff", "/dashboard/add_staff", form, msg)
	}
	return h.render.Redirect(c, "/dashboard/staff", FlashSuccess, "Staff added successfully")
}

// EditForm renders the edit staff form pre-filled from the backend.
func (h *StaffHandler) EditForm(c *fiber.Ctx) error {
	id := c.Params("id")
	staff, err := h.service.Get(c.UserContext(), caller(c), id)
	if err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		return h.render.Redirect(c, "/dashboard/staff", FlashError, msg)
	}
	return h.renderForm(c, "Edit Staff", "/dashboard/edit_staff/"+id, dto.StaffFormFrom(staff), "")
}

// Update saves the edit staff form.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	action := "/dashboard/edit_staff/" + id
	var form dto.StaffForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	if err := form.Validate(); err != nil {
		return h.renderForm(c, "Edit Staff", action, form, dto.Message(err))
	}
	in, err := form.Input()
	if err != nil {
		return h.renderForm(c, "Edit Staff", action, form, err.Error())
	}
	if err := h.service.Update(c.UserContext(), caller(c), id, in); err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		form.Password = ""
		return h.renderForm(c, "Edit Staff", action, form, msg)
	}
	return h.render.Redirect(c, "/dashboard/staff", FlashSuccess, "Staff updated successfully.")
}

func (h *StaffHandler) renderForm(c *fiber.Ctx, title, action string, form dto.StaffForm, message string) error {
	data := fiber.Map{"Title": title, "Action": action, "Form": form, "Error": message, "Editing": strings.Contains(action, "edit_staff")}
	categories, err := h.service.Categories(c.UserContext(), caller(c))
	if err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		data["CategoryError"] = msg
		categories = []domain.Category{}
	}
	data["Categories"] = categories
	return h.render.Dashboard(c, "staff/form", data)
}

// Categories renders the category table.
func (h *StaffHandler) Categories(c *fiber.Ctx) error {
	page, err := h.service.CategoryPage(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "staff/categories", fiber.Map{"Title": "Categories", "Page": page})
}

// NewCategoryForm renders the add category form.
func (h *StaffHandler) NewCategoryForm(c *fiber.Ctx) error {
	return h.render.Dashboard(c, "staff/category_form", fiber.Map{"Title": "Add Category", "Form": dto.CategoryForm{}})
}

// CreateCategory saves the add category form.
func (h *StaffHandler) CreateCategory(c *fiber.Ctx) error {
	var form dto.CategoryForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	rerender := func(msg string) error {
		return h.render.Dashboard(c, "staff/category_form", fiber.Map{"Title": "Add Category", "Form": form, "Error": msg})
	}
	if err := form.Validate(); err != nil {
		return rerender(dto.Message(err))
	}
	if err := h.service.CreateCategory(c.UserContext(), caller(c), form.Category); err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		return rerender(msg)
	}
	return h.render.Redirect(c, "/dashboard/category", FlashSuccess, "Category added successfully.")
}
