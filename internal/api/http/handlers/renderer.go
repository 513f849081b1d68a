package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/auth"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	"github.com/eltonkaiton/mombasa-admin/internal/session"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// Flash kinds, matching the alert styles of the layout.
const (
	FlashSuccess = "success"
	FlashError   = "danger"
)

// Layouts the pages render into.
const (
	layoutDashboard = "layouts/dashboard"
	layoutAuth      = "layouts/auth"
	layoutPrint     = "layouts/print"
)

// Renderer fills in the data every page shares.
type Renderer struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewRenderer builds a renderer over the session manager.
func NewRenderer(sessions *session.Manager, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{sessions: sessions, logger: logger}
}

// Dashboard renders name inside the sidebar layout.
func (r *Renderer) Dashboard(c *fiber.Ctx, name string, data fiber.Map) error {
	return c.Render(name, r.shared(c, data), layoutDashboard)
}

// Auth renders name inside the centered card layout of the login pages.
func (r *Renderer) Auth(c *fiber.Ctx, name string, data fiber.Map) error {
	return c.Render(name, r.shared(c, data), layoutAuth)
}

// Print renders a receipt page that prints itself on load.
func (r *Renderer) Print(c *fiber.Ctx, name string, data fiber.Map) error {
	return c.Render(name, r.shared(c, data), layoutPrint)
}

// Redirect queues a flash on the session and redirects with 303 so the
// browser follows up with a GET.
func (r *Renderer) Redirect(c *fiber.Ctx, to, kind, message string) error {
	if sess, ok := auth.SessionFromContext(c); ok && message != "" {
		r.sessions.Flash(c, sess, kind, message)
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

func (r *Renderer) shared(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Path"] = c.Path()
	data["Section"] = view.SectionTitle(c.Path())
	if _, ok := data["Title"]; !ok {
		data["Title"] = data["Section"]
	}
	if principal, ok := auth.PrincipalFromContext(c); ok {
		data["Principal"] = principal
	}
	if sess, ok := auth.SessionFromContext(c); ok && sess.Flash != nil {
		data["Flash"] = sess.PopFlash()
		if err := r.sessions.Save(c.UserContext(), sess); err != nil {
			r.logger.Warn("failed to clear flash", zap.Error(err))
		}
	}
	return data
}

// caller builds the service caller for the request's session.
func caller(c *fiber.Ctx) service.Caller {
	principal, _ := auth.PrincipalFromContext(c)
	return service.Caller{Token: auth.Token(c), Principal: principal}
}

// formError splits a failed write into the message shown above the form and
// the errors the middleware must handle, such as an expired session.
func formError(err error) (string, error) {
	if apperrors.IsUnauthorized(err) {
		return "", err
	}
	return service.Message(err), nil
}

// withSearch keeps the search box term across a redirect.
func withSearch(path, search string) string {
	if search == "" {
		return path
	}
	return path + "?q=" + url.QueryEscape(search)
}
