package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

const pendingUsers = `[
	{"_id":"u1","full_name":"Amina Ali","email":"amina@x.com","status":"pending"},
	{"_id":"u2","full_name":"Baraka Otieno","email":"baraka@x.com","status":"pending"},
	{"_id":"u3","full_name":"Chebet","email":"chebet@x.com","status":"active"}]`

func loadPending(t *testing.T, svc *UserService) *UsersPage {
	t.Helper()
	page, err := svc.ListPage(context.Background(), adminCaller, domain.UserStatusPending, "")
	require.NoError(t, err)
	return page
}

func TestUserListPageKeepsTabStatus(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("GET /users", http.StatusOK, pendingUsers)

	page := loadPending(t, NewUserService(client, Dependencies{}))
	assert.Len(t, page.List.Items, 2)
	assert.Len(t, page.Actions(), 2)
}

func TestChangeStatusRemovesRow(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("GET /users", http.StatusOK, pendingUsers)
	fb.on("PUT /users/u1/status", http.StatusOK, `{"Status":true}`)
	metrics := &statusCounter{}
	recorded := &recordedEvents{}
	svc := NewUserService(client, recorded.deps(metrics))

	page := loadPending(t, svc)
	require.NoError(t, svc.ChangeStatus(context.Background(), adminCaller, page, "u1", domain.UserStatusActive))

	_, found := page.List.Find("u1")
	assert.False(t, found)
	assert.Empty(t, page.List.Error)
	assert.Equal(t, []string{"user:active:ok"}, metrics.calls)
	assert.Equal(t, []events.EventType{events.EventUserStatusChanged}, recorded.types())
}

func TestChangeStatusRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("GET /users", http.StatusOK, pendingUsers)
	fb.on("PUT /users/u2/status", http.StatusInternalServerError, ``)
	metrics := &statusCounter{}
	recorded := &recordedEvents{}
	svc := NewUserService(client, recorded.deps(metrics))

	page := loadPending(t, svc)
	err := svc.ChangeStatus(context.Background(), adminCaller, page, "u2", domain.UserStatusRejected)
	require.Error(t, err)

	assert.Equal(t, "Failed to update user status.", page.List.Error)
	require.Len(t, page.List.Items, 2)
	assert.Equal(t, "u2", page.List.Items[1].ID)
	assert.Equal(t, []string{"user:rejected:failed"}, metrics.calls)
	assert.Empty(t, recorded.types())
}

func TestChangeStatusRejectsUnofferedTransition(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("GET /users", http.StatusOK, pendingUsers)
	svc := NewUserService(client, Dependencies{})

	page := loadPending(t, svc)
	hits := fb.count()
	err := svc.ChangeStatus(context.Background(), adminCaller, page, "u1", domain.UserStatusSuspended)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	assert.Equal(t, hits, fb.count())
	assert.Len(t, page.List.Items, 2)
}

func TestChangeStatusUnauthorizedPassesThrough(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("GET /users", http.StatusOK, pendingUsers)
	fb.on("PUT /users/u1/status", http.StatusUnauthorized, ``)
	svc := NewUserService(client, Dependencies{})

	page := loadPending(t, svc)
	err := svc.ChangeStatus(context.Background(), adminCaller, page, "u1", domain.UserStatusActive)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Len(t, page.List.Items, 2)
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewUserService(client, Dependencies{})

	err := svc.Create(context.Background(), adminCaller, domain.NewUser{FullName: "Amina"})
	assert.Equal(t, "Please fill in all required fields.", Message(err))

	fb.on("POST /admin/add_user", http.StatusOK, `{"Status":false,"Error":"Email already registered"}`)
	err = svc.Create(context.Background(), adminCaller, domain.NewUser{FullName: "Amina", Email: "amina@x.com", Password: "pw"})
	assert.Equal(t, "Email already registered", Message(err))
}
