package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/api/dto"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// UsersHandler serves the customer account tabs.
type UsersHandler struct {
	service *service.UserService
	render  *Renderer
}

// NewUsersHandler constructs a handler.
func NewUsersHandler(svc *service.UserService, render *Renderer) *UsersHandler {
	return &UsersHandler{service: svc, render: render}
}

func tabPath(status domain.UserStatus, search string) string {
	return withSearch(fmt.Sprintf("/dashboard/users/%s", status), search)
}

func parseTab(raw string) (domain.UserStatus, error) {
	if raw == "" {
		return domain.UserStatusActive, nil
	}
	status, err := domain.ParseUserStatus(raw)
	if err != nil {
		return "", apperrors.NewNotFound("users tab", map[string]any{"status": raw})
	}
	return status, nil
}

// Tab renders the users in one status, defaulting to active.
func (h *UsersHandler) Tab(c *fiber.Ctx) error {
	status, err := parseTab(c.Params("status"))
	if err != nil {
		return err
	}
	page, err := h.service.ListPage(c.UserContext(), caller(c), status, strings.TrimSpace(c.Query("q")))
	if err != nil {
		return err
	}
	return h.render.Dashboard(c, "users/list", fiber.Map{"Title": status.Title() + " Users", "Page": page})
}

// ChangeStatus applies an action button of a users tab.
func (h *UsersHandler) ChangeStatus(c *fiber.Ctx) error {
	var form dto.UserStatusForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	if err := form.Validate(); err != nil {
		return apperrors.NewValidationError(dto.Message(err), nil)
	}
	tab, err := parseTab(form.Tab)
	if err != nil {
		return err
	}
	target := domain.UserStatus(form.Status)
	search := strings.TrimSpace(form.Search)

	page, err := h.service.ListPage(c.UserContext(), caller(c), tab, search)
	if err != nil {
		return err
	}
	if page.List.Error != "" {
		return h.render.Redirect(c, tabPath(tab, search), FlashError, page.List.Error)
	}
	if err := h.service.ChangeStatus(c.UserContext(), caller(c), page, c.Params("id"), target); err != nil {
		if apperrors.IsUnauthorized(err) {
			return err
		}
		return h.render.Dashboard(c, "users/list", fiber.Map{"Title": tab.Title() + " Users", "Page": page})
	}
	return h.render.Redirect(c, tabPath(tab, search), FlashSuccess, fmt.Sprintf("User moved to %s.", target.Title()))
}

// NewForm renders the add user form.
func (h *UsersHandler) NewForm(c *fiber.Ctx) error {
	return h.render.Dashboard(c, "users/form", fiber.Map{"Title": "Add User", "Form": dto.UserForm{}})
}

// Create saves the add user form.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	rerender := func(msg string) error {
		form.Password = ""
		return h.render.Dashboard(c, "users/form", fiber.Map{"Title": "Add User", "Form": form, "Error": msg})
	}
	if err := form.Validate(); err != nil {
		return rerender(dto.Message(err))
	}
	if err := h.service.Create(c.UserContext(), caller(c), form.Input()); err != nil {
		msg, err := formError(err)
		if err != nil {
			return err
		}
		return rerender(msg)
	}
	return h.render.Redirect(c, "/dashboard/users/pending", FlashSuccess, "User added successfully.")
}
