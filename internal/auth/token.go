package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// Claims describes the payload of a backend-issued token.
type Claims struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims reads the token payload without checking the signature. The
// backend owns the signing key and re-verifies the token on every call; the
// console only needs the role to pick a landing page.
func DecodeClaims(token string) (*Claims, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}

// Principal builds the session principal from the claims.
func (c *Claims) Principal() domain.Principal {
	id := c.ID
	if id == "" {
		id = c.Subject
	}
	return domain.Principal{ID: id, Email: c.Email, Role: c.Role}
}

// Expiry is the exp claim, zero when absent.
func (c *Claims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}
