package domain

import "time"

// Role is the role claim carried by the backend token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Principal is the operator behind a session.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the principal may use the dashboard.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Credentials is a login form submission.
type Credentials struct {
	Email      string
	Password   string
	AgreeTerms bool
	RememberMe bool
}

// LoginResult is what the backend hands back on a successful login.
type LoginResult struct {
	Token     string
	StaffID   string
	Principal Principal
	ExpiresAt time.Time
	// Redirect is the landing page for the principal's role.
	Redirect string
}
