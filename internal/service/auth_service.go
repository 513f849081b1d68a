package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/auth"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

const (
	msgAgreeTerms     = "You must agree to the Terms and Conditions before submitting."
	msgLoginFailed    = "Login failed"
	msgAdminLoginDown = "Something went wrong. Please try again."
	msgStaffLoginDown = "An error occurred during login."
	msgFillAllFields  = "Please fill in all fields"
	msgNoDashboard    = "This account cannot access the dashboard."
)

// AuthBackend is the part of the backend the login flows use.
type AuthBackend interface {
	AdminLogin(ctx context.Context, email, password string) (string, error)
	StaffLogin(ctx context.Context, email, password string) (id, token string, err error)
	StaffDetail(ctx context.Context, token, id string) (domain.StaffMember, error)
}

// AuthService coordinates the admin and staff login flows.
type AuthService struct {
	base
	backend AuthBackend
}

// NewAuthService builds the service.
func NewAuthService(backend AuthBackend, deps Dependencies) *AuthService {
	return &AuthService{base: newBase(deps), backend: backend}
}

// loginFailure maps a failed login call. A 401 on the login endpoint means
// bad credentials, not an expired session.
func (s *AuthService) loginFailure(op string, err error, network string) error {
	if apperrors.IsUnauthorized(err) {
		return apperrors.NewValidationError(msgLoginFailed, nil)
	}
	return s.failure(op, err, msgLoginFailed, network)
}

// LoginAdmin signs in through the admin endpoint and routes the principal by
// the role claim of the returned token. Nothing is sent unless the terms
// were agreed to.
func (s *AuthService) LoginAdmin(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	if !creds.AgreeTerms {
		return nil, apperrors.NewValidationError(msgAgreeTerms, nil)
	}
	email := strings.TrimSpace(creds.Email)
	if blank(email, creds.Password) {
		return nil, apperrors.NewValidationError(msgFillAllFields, nil)
	}

	token, err := s.backend.AdminLogin(ctx, email, creds.Password)
	if err != nil {
		return nil, s.loginFailure("admin_login", err, msgAdminLoginDown)
	}
	if token == "" {
		return nil, apperrors.NewRejected(msgLoginFailed)
	}

	claims, err := auth.DecodeClaims(token)
	if err != nil {
		s.logger.Warn("undecodable admin token", zap.Error(err))
		return nil, apperrors.NewRejected(msgLoginFailed)
	}
	principal := claims.Principal()
	if principal.Email == "" {
		principal.Email = email
	}

	result := &domain.LoginResult{Token: token, Principal: principal, ExpiresAt: claims.Expiry()}
	switch principal.Role {
	case domain.RoleAdmin:
		result.Redirect = "/dashboard"
	case domain.RoleStaff:
		result.StaffID = principal.ID
		result.Redirect = "/staff_detail/" + principal.ID
	default:
		return nil, apperrors.NewForbidden(msgNoDashboard)
	}

	s.publish(ctx, Caller{Token: token, Principal: principal}, events.EventLogin, principal.ID, events.RecordPayload{Email: principal.Email})
	return result, nil
}

// LoginStaff signs a staff member in to their own detail page.
func (s *AuthService) LoginStaff(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	if !creds.AgreeTerms {
		return nil, apperrors.NewValidationError(msgAgreeTerms, nil)
	}
	email := strings.TrimSpace(creds.Email)
	if blank(email, creds.Password) {
		return nil, apperrors.NewValidationError(msgFillAllFields, nil)
	}

	id, token, err := s.backend.StaffLogin(ctx, email, creds.Password)
	if err != nil {
		return nil, s.loginFailure("staff_login", err, msgStaffLoginDown)
	}
	if id == "" {
		return nil, apperrors.NewRejected(msgLoginFailed)
	}

	principal := domain.Principal{ID: id, Email: email, Role: domain.RoleStaff}
	result := &domain.LoginResult{Token: token, StaffID: id, Redirect: "/staff_detail/" + id}
	if token != "" {
		if claims, err := auth.DecodeClaims(token); err == nil {
			result.ExpiresAt = claims.Expiry()
		}
	}
	result.Principal = principal

	s.publish(ctx, Caller{Token: token, Principal: principal}, events.EventLogin, id, events.RecordPayload{Email: email})
	return result, nil
}

// StaffDetailPage is the staff member's own record.
type StaffDetailPage struct {
	Staff domain.StaffMember
	Error string
}

// StaffDetail loads the record shown after a staff login.
func (s *AuthService) StaffDetail(ctx context.Context, caller Caller, id string) (*StaffDetailPage, error) {
	staff, err := s.backend.StaffDetail(ctx, caller.Token, id)
	if err != nil {
		msg, err := s.pageError("staff_detail", err, "Staff not found.", "Error fetching staff data.")
		return &StaffDetailPage{Error: msg}, err
	}
	return &StaffDetailPage{Staff: staff}, nil
}

// Logout records the end of a session. The HTTP layer destroys the session.
func (s *AuthService) Logout(ctx context.Context, caller Caller) {
	s.publish(ctx, caller, events.EventLogout, caller.Principal.ID, nil)
}
