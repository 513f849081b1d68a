package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/config"
)

const (
	rememberCookie = "staff_email"
	rememberFor    = 30 * 24 * time.Hour
)

// Manager binds sessions to the request cookie.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *zap.Logger
}

// NewManager builds a manager over store.
func NewManager(store Store, cfg config.SessionConfig, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	name := cfg.CookieName
	if name == "" {
		name = "mombasa_admin_session"
	}
	return &Manager{store: store, cookieName: name, ttl: cfg.TTL(), secure: cfg.SecureCookie, logger: logger}
}

// Load returns the session named by the request cookie, or ErrNotFound.
func (m *Manager) Load(c *fiber.Ctx) (*Session, error) {
	id := c.Cookies(m.cookieName)
	if id == "" {
		return nil, ErrNotFound
	}
	sess, err := m.store.Get(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("session lookup failed", zap.Error(err))
		}
		return nil, err
	}
	return sess, nil
}

// Start saves a new session and hands its id to the browser.
func (m *Manager) Start(c *fiber.Ctx, sess *Session) error {
	if err := m.store.Save(c.UserContext(), sess); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Save writes back a modified session.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	return m.store.Save(ctx, sess)
}

// Destroy drops the session behind the request and expires the cookie.
func (m *Manager) Destroy(c *fiber.Ctx) error {
	id := c.Cookies(m.cookieName)
	c.ClearCookie(m.cookieName)
	if id == "" {
		return nil
	}
	return m.store.Delete(c.UserContext(), id)
}

// Flash queues a message on the session behind the request, if any.
func (m *Manager) Flash(c *fiber.Ctx, sess *Session, kind, message string) {
	if sess == nil {
		return
	}
	sess.SetFlash(kind, message)
	if err := m.store.Save(c.UserContext(), sess); err != nil {
		m.logger.Warn("failed to save flash", zap.Error(err))
	}
}

// RememberEmail keeps the staff login email for the next visit.
func (m *Manager) RememberEmail(c *fiber.Ctx, email string) {
	c.Cookie(&fiber.Cookie{
		Name:     rememberCookie,
		Value:    email,
		Path:     "/",
		Expires:  time.Now().Add(rememberFor),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ForgetEmail drops a remembered staff email.
func (m *Manager) ForgetEmail(c *fiber.Ctx) {
	c.ClearCookie(rememberCookie)
}

// RememberedEmail returns the email saved by RememberEmail.
func (m *Manager) RememberedEmail(c *fiber.Ctx) string {
	return c.Cookies(rememberCookie)
}

// CookieName is the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookieName
}
