package service

import (
	"context"
	"net/http"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

func TestLoginWithoutTermsNeverCallsBackend(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewAuthService(client, Dependencies{})

	for _, login := range []func(context.Context, domain.Credentials) (*domain.LoginResult, error){svc.LoginAdmin, svc.LoginStaff} {
		_, err := login(context.Background(), domain.Credentials{Email: "admin@x.com", Password: "secret"})
		require.Error(t, err)
		assert.Equal(t, "You must agree to the Terms and Conditions before submitting.", Message(err))
	}
	assert.Zero(t, fb.count())
}

func TestLoginAdminRoutesByRole(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		claims   jwt.MapClaims
		redirect string
		code     string
	}{
		{name: "admin", claims: jwt.MapClaims{"id": "a1", "email": "admin@x.com", "role": "admin"}, redirect: "/dashboard"},
		{name: "staff", claims: jwt.MapClaims{"id": "s7", "role": "staff"}, redirect: "/staff_detail/s7"},
		{name: "customer", claims: jwt.MapClaims{"id": "u1", "role": "customer"}, code: apperrors.CodeForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb, client := newFakeBackend(t)
			fb.on("POST /admin/adminlogin", http.StatusOK, loginBody(t, tokenFor(t, tc.claims)))
			recorded := &recordedEvents{}
			svc := NewAuthService(client, recorded.deps(nil))

			result, err := svc.LoginAdmin(context.Background(), domain.Credentials{Email: "admin@x.com", Password: "secret", AgreeTerms: true})
			if tc.code != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tc.code))
				assert.Empty(t, recorded.types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.redirect, result.Redirect)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, []events.EventType{events.EventLogin}, recorded.types())
		})
	}
}

func TestLoginAdminFailures(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewAuthService(client, Dependencies{})
	creds := domain.Credentials{Email: "admin@x.com", Password: "bad", AgreeTerms: true}

	fb.on("POST /admin/adminlogin", http.StatusOK, `{"loginStatus":false,"Error":"wrong email or password"}`)
	_, err := svc.LoginAdmin(context.Background(), creds)
	assert.Equal(t, "wrong email or password", Message(err))

	fb.on("POST /admin/adminlogin", http.StatusUnauthorized, `{}`)
	_, err = svc.LoginAdmin(context.Background(), creds)
	assert.Equal(t, "Login failed", Message(err))
	assert.False(t, apperrors.IsUnauthorized(err))

	fb.on("POST /admin/adminlogin", http.StatusBadGateway, ``)
	_, err = svc.LoginAdmin(context.Background(), creds)
	assert.Equal(t, "Something went wrong. Please try again.", Message(err))

	_, err = svc.LoginAdmin(context.Background(), domain.Credentials{Email: " ", Password: "x", AgreeTerms: true})
	assert.Equal(t, "Please fill in all fields", Message(err))
}

func TestLoginStaff(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewAuthService(client, Dependencies{})

	fb.on("POST /staff/staff_login", http.StatusOK, `{"loginStatus":true,"id":"s7"}`)
	result, err := svc.LoginStaff(context.Background(), domain.Credentials{Email: "jane@x.com", Password: "pw", AgreeTerms: true})
	require.NoError(t, err)
	assert.Equal(t, "/staff_detail/s7", result.Redirect)
	assert.Equal(t, domain.Principal{ID: "s7", Email: "jane@x.com", Role: domain.RoleStaff}, result.Principal)

	fb.on("POST /staff/staff_login", http.StatusInternalServerError, ``)
	_, err = svc.LoginStaff(context.Background(), domain.Credentials{Email: "jane@x.com", Password: "pw", AgreeTerms: true})
	assert.Equal(t, "An error occurred during login.", Message(err))
}

func TestStaffDetail(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewAuthService(client, Dependencies{})

	fb.on("GET /staff/detail/s7", http.StatusOK, `{"Status":true,"Result":[{"_id":"s7","name":"Jane","salary":"50000"}]}`)
	page, err := svc.StaffDetail(context.Background(), Caller{}, "s7")
	require.NoError(t, err)
	assert.Equal(t, "Jane", page.Staff.Name)

	page, err = svc.StaffDetail(context.Background(), Caller{}, "missing")
	require.NoError(t, err)
	assert.Equal(t, "Staff not found.", page.Error)
}
