package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/config"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

type observerMock struct {
	mock.Mock
}

func (m *observerMock) ObserveBackendCall(endpoint, outcome string, _ time.Duration) {
	m.Called(endpoint, outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop(), opts...)
}

func TestListStaffSendsBearerToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/staff", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"Status":true,"Result":[{"_id":"s1","name":"Jane","email":"jane@x.com","salary":50000,"address":"Mombasa","category":"Deckhand"}]}`)
	})

	staff, err := client.ListStaff(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Jane", staff[0].Name)
	assert.Equal(t, 50000.0, staff[0].Salary.Float64())
}

func TestEnvelopeStatusFalseIsRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"Status":false,"Error":"Query Error"}`)
	})

	_, err := client.ListStaff(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeRejected))
	assert.Equal(t, "Query Error", apperrors.ToDomainError(err).Message)
}

func TestStatusCodeMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
		body   string
		code   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, code: apperrors.CodeUnauthorized},
		{name: "not found", status: http.StatusNotFound, body: ``, code: apperrors.CodeNotFound},
		{name: "bad request with message", status: http.StatusBadRequest, body: `{"error":"email taken"}`, code: apperrors.CodeRejected},
		{name: "bad request without message", status: http.StatusBadRequest, body: `oops`, code: apperrors.CodeUnreachable},
		{name: "server error", status: http.StatusInternalServerError, body: `{"Error":"boom"}`, code: apperrors.CodeUnreachable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			err := client.DeleteStaff(context.Background(), "tok", "s1")
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func TestTransportFailureIsUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(config.BackendConfig{BaseURL: srv.URL}, nil)

	_, err := client.ListBookings(context.Background(), "tok")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnreachable))
}

func TestListUsersShapes(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`[{"_id":"u1","full_name":"Amina","status":"pending"}]`,
		`{"Users":[{"_id":"u1","full_name":"Amina","status":"pending"}]}`,
		`{"Status":true,"Result":[{"_id":"u1","full_name":"Amina","status":"pending"}]}`,
	}
	for _, body := range bodies {
		body := body
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "pending", r.URL.Query().Get("status"))
			_, _ = io.WriteString(w, body)
		})
		users, err := client.ListUsers(context.Background(), "tok", domain.UserStatusPending)
		require.NoError(t, err, body)
		require.Len(t, users, 1, body)
		assert.Equal(t, "Amina", users[0].FullName)
	}
}

func TestUpdateUserStatusPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/u1/status", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "active", payload["status"])
		_, _ = io.WriteString(w, `{"Status":true}`)
	})

	require.NoError(t, client.UpdateUserStatus(context.Background(), "tok", "u1", domain.UserStatusActive))
}

func salary(v float64) *float64 { return &v }

func TestUpdateStaffOmitsEmptyPassword(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, hasPassword := payload["password"]
		assert.False(t, hasPassword)
		_, _ = io.WriteString(w, `{"Status":true}`)
	})

	err := client.UpdateStaff(context.Background(), "tok", "s1", domain.StaffInput{Name: "Jane", Salary: salary(50000)})
	require.NoError(t, err)
}

func TestGetSupplierAcceptsBareRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"p1","name":"Bahari Fuel","status":"active"}`)
	})

	supplier, err := client.GetSupplier(context.Background(), "tok", "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.SupplierStatusActive, supplier.Status)
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var creds loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		switch creds.Password {
		case "secret":
			_, _ = io.WriteString(w, `{"loginStatus":true,"token":"jwt-token"}`)
			return
		case "token-only":
			_, _ = io.WriteString(w, `{"token":"bare-token"}`)
			return
		}
		_, _ = io.WriteString(w, `{"loginStatus":false,"Error":"wrong email or password"}`)
	})

	token, err := client.AdminLogin(context.Background(), "admin@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	token, err = client.AdminLogin(context.Background(), "admin@x.com", "token-only")
	require.NoError(t, err)
	assert.Equal(t, "bare-token", token)

	_, err = client.AdminLogin(context.Background(), "admin@x.com", "nope")
	require.Error(t, err)
	assert.Equal(t, "wrong email or password", apperrors.UserMessage(err, "", ""))
}

func TestStaffLoginAcceptsBareID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":"s1"}`)
	})

	id, token, err := client.StaffLogin(context.Background(), "jane@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "s1", id)
	assert.Empty(t, token)
}

func TestLoginWithoutGrantIsRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, _, err := client.StaffLogin(context.Background(), "jane@x.com", "pw")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeRejected))
}

func TestReportsDecodeRawJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reports/daily":
			_, _ = io.WriteString(w, `{"date":"2025-03-01","pendingUsers":2,"activeUsers":10,"pendingBookings":3,"approvedBookings":7}`)
		case "/api/reports/payments":
			_, _ = io.WriteString(w, `[{"_id":"r1","amount":1200}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	daily, err := client.DailyReport(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(7), daily.ApprovedBookings)

	rows, err := client.Report(context.Background(), "tok", ReportPayments)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0]["_id"])
}

func TestObserverReceivesOutcome(t *testing.T) {
	t.Parallel()

	obs := new(observerMock)
	obs.On("ObserveBackendCall", "GET /admin/staff", "ok").Once()
	obs.On("ObserveBackendCall", "GET /admin/category", "unauthorized").Once()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/category" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"Status":true,"Result":[]}`)
	}, WithObserver(obs))

	_, err := client.ListStaff(context.Background(), "tok")
	require.NoError(t, err)
	_, err = client.ListCategories(context.Background(), "tok")
	require.Error(t, err)

	obs.AssertExpectations(t)
}
