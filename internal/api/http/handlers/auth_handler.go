package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/api/dto"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	"github.com/eltonkaiton/mombasa-admin/internal/session"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

const msgSessionExpired = "Your session has expired. Please log in again."

// AuthHandler serves the login chooser, both login forms and logout.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Manager
	render   *Renderer
	logger   *zap.Logger
}

// NewAuthHandler constructs a handler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager, render *Renderer, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{service: svc, sessions: sessions, render: render, logger: logger}
}

// Root sends visitors to the login chooser.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	return c.Redirect("/start", fiber.StatusSeeOther)
}

// Start renders the login chooser.
func (h *AuthHandler) Start(c *fiber.Ctx) error {
	return h.render.Auth(c, "auth/start", fiber.Map{"Title": "Mombasa Ferry Services"})
}

// AdminLoginForm renders the admin login page.
func (h *AuthHandler) AdminLoginForm(c *fiber.Ctx) error {
	data := fiber.Map{"Title": "Admin Login", "Form": dto.LoginForm{}}
	if c.Query("expired") != "" {
		data["Error"] = msgSessionExpired
	}
	return h.render.Auth(c, "auth/admin_login", data)
}

// AdminLogin signs an operator in and routes them by role.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	rerender := func(msg string) error {
		form.Password = ""
		return h.render.Auth(c, "auth/admin_login", fiber.Map{"Title": "Admin Login", "Form": form, "Error": msg})
	}
	if err := form.Validate(); err != nil {
		return rerender(dto.Message(err))
	}

	result, err := h.service.LoginAdmin(c.UserContext(), form.Credentials())
	if err != nil {
		return rerender(service.Message(err))
	}
	if err := h.startSession(c, result); err != nil {
		return err
	}
	return c.Redirect(result.Redirect, fiber.StatusSeeOther)
}

// StaffLoginForm renders the staff login page with any remembered email.
func (h *AuthHandler) StaffLoginForm(c *fiber.Ctx) error {
	remembered := h.sessions.RememberedEmail(c)
	form := dto.LoginForm{Email: remembered, RememberMe: remembered != ""}
	return h.render.Auth(c, "auth/staff_login", fiber.Map{"Title": "Staff Login", "Form": form})
}

// StaffLogin signs a staff member in to their own detail page.
func (h *AuthHandler) StaffLogin(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form body", map[string]any{"error": err.Error()})
	}
	rerender := func(msg string) error {
		form.Password = ""
		return h.render.Auth(c, "auth/staff_login", fiber.Map{"Title": "Staff Login", "Form": form, "Error": msg})
	}
	if err := form.Validate(); err != nil {
		return rerender(dto.Message(err))
	}

	result, err := h.service.LoginStaff(c.UserContext(), form.Credentials())
	if err != nil {
		return rerender(service.Message(err))
	}
	if form.RememberMe {
		h.sessions.RememberEmail(c, form.Email)
	} else {
		h.sessions.ForgetEmail(c)
	}
	if err := h.startSession(c, result); err != nil {
		return err
	}
	return c.Redirect(result.Redirect, fiber.StatusSeeOther)
}

func (h *AuthHandler) startSession(c *fiber.Ctx, result *domain.LoginResult) error {
	sess := session.New(result.Token, result.Principal)
	sess.ExpiresAt = result.ExpiresAt
	if err := h.sessions.Start(c, sess); err != nil {
		h.logger.Error("failed to start session", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// StaffDetail shows a staff member their own record.
func (h *AuthHandler) StaffDetail(c *fiber.Ctx) error {
	page, err := h.service.StaffDetail(c.UserContext(), caller(c), c.Params("id"))
	if err != nil {
		return err
	}
	return h.render.Auth(c, "auth/staff_detail", fiber.Map{"Title": "Staff Details", "Page": page})
}

// Logout ends the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := h.sessions.Load(c); err == nil {
		h.service.Logout(c.UserContext(), service.Caller{Token: sess.Token, Principal: sess.Principal})
	}
	if err := h.sessions.Destroy(c); err != nil {
		h.logger.Warn("failed to destroy session", zap.Error(err))
	}
	return c.Redirect("/start", fiber.StatusSeeOther)
}
