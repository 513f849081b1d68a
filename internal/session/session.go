package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// ErrNotFound is returned when no live session matches an id.
var ErrNotFound = errors.New("session not found")

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Session is the server-side state behind the session cookie. The backend
// token never leaves the server.
type Session struct {
	ID        string           `json:"id"`
	Token     string           `json:"token"`
	Principal domain.Principal `json:"principal"`
	Flash     *Flash           `json:"flash,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	// ExpiresAt mirrors the token's exp claim; zero when the token has none.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// New opens a session for a freshly logged-in principal.
func New(token string, principal domain.Principal) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		Principal: principal,
		CreatedAt: time.Now().UTC(),
	}
}

// Expired reports whether the backend token behind the session has lapsed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// SetFlash queues a message for the next page.
func (s *Session) SetFlash(kind, message string) {
	s.Flash = &Flash{Kind: kind, Message: message}
}

// PopFlash returns and clears the queued message.
func (s *Session) PopFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

// Store persists sessions.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
