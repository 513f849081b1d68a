package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/session"
)

const (
	principalKey = "auth_principal"
	sessionKey   = "auth_session"
)

// SessionMiddleware loads the caller's session and sends anonymous callers
// to the login page.
type SessionMiddleware struct {
	sessions  *session.Manager
	loginPath string
	logger    *zap.Logger
	now       func() time.Time
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions *session.Manager, loginPath string, logger *zap.Logger) *SessionMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionMiddleware{sessions: sessions, loginPath: loginPath, logger: logger, now: time.Now}
}

// Handle enforces a session for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	sess, err := m.sessions.Load(c)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			m.logger.Warn("session store unavailable", zap.Error(err))
		}
		return c.Redirect(m.loginPath, fiber.StatusSeeOther)
	}
	if sess.Expired(m.now()) {
		m.logger.Info("session token expired", zap.String("principal_id", sess.Principal.ID))
		if err := m.sessions.Destroy(c); err != nil {
			m.logger.Warn("failed to destroy session", zap.Error(err))
		}
		return c.Redirect(m.loginPath, fiber.StatusSeeOther)
	}

	c.Locals(sessionKey, sess)
	c.Locals(principalKey, sess.Principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated operator.
func PrincipalFromContext(c *fiber.Ctx) (domain.Principal, bool) {
	principal, ok := c.Locals(principalKey).(domain.Principal)
	return principal, ok
}

// SessionFromContext retrieves the session loaded by the middleware.
func SessionFromContext(c *fiber.Ctx) (*session.Session, bool) {
	sess, ok := c.Locals(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}

// Token returns the backend token of the caller, empty when anonymous.
func Token(c *fiber.Ctx) string {
	if sess, ok := SessionFromContext(c); ok {
		return sess.Token
	}
	return ""
}
