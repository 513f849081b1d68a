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

const janeAndOmar = `{"Status":true,"Result":[
	{"_id":"s1","name":"Jane","email":"jane@x.com","salary":50000,"address":"Mombasa","category":"Deckhand"},
	{"_id":"s2","name":"Omar","email":"omar@x.com","salary":42000,"address":"Likoni","category":"Engineer"}]}`

func TestStaffListPage(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewStaffService(client, Dependencies{})
	fb.on("GET /admin/staff", http.StatusOK, janeAndOmar)

	page, err := svc.ListPage(context.Background(), adminCaller, "likoni")
	require.NoError(t, err)
	require.Len(t, page.Visible(), 1)
	assert.Equal(t, "Omar", page.Visible()[0].Name)
	assert.Equal(t, 2, page.Count())
}

func TestStaffListPageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "rejected without message", status: http.StatusOK, body: `{"Status":false}`, expected: "No staff found."},
		{name: "rejected with message", status: http.StatusOK, body: `{"Status":false,"Error":"Query Error"}`, expected: "Query Error"},
		{name: "server down", status: http.StatusInternalServerError, body: ``, expected: "Error fetching staff. Please try again later."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb, client := newFakeBackend(t)
			fb.on("GET /admin/staff", tc.status, tc.body)
			page, err := NewStaffService(client, Dependencies{}).ListPage(context.Background(), adminCaller, "")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, page.Error)
			assert.True(t, page.Empty())
		})
	}
}

func TestStaffListPageUnauthorized(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("GET /admin/staff", http.StatusUnauthorized, `{}`)
	_, err := NewStaffService(client, Dependencies{}).ListPage(context.Background(), adminCaller, "")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestStaffCreateRequiresEveryField(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewStaffService(client, Dependencies{})

	fifty := 50000.0
	err := svc.Create(context.Background(), adminCaller, domain.StaffInput{Name: "Jane", Email: "jane@x.com", Salary: &fifty})
	assert.Equal(t, "Please fill in all fields", Message(err))

	err = svc.Create(context.Background(), adminCaller, domain.StaffInput{
		Name: "Jane", Email: "jane@x.com", Password: "pw", Address: "Mombasa", Category: "Deckhand",
	})
	assert.Equal(t, "Please fill in all fields", Message(err))
	assert.Zero(t, fb.count())
}

func TestStaffCreateAcceptsZeroSalary(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	fb.on("POST /admin/add_staff", http.StatusOK, `{"Status":true}`)
	svc := NewStaffService(client, Dependencies{})

	zero := 0.0
	err := svc.Create(context.Background(), adminCaller, domain.StaffInput{
		Name: "Jane", Email: "jane@x.com", Password: "pw", Salary: &zero, Address: "Mombasa", Category: "Deckhand",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fb.count())
}

func TestStaffDeleteRestoresRowOnFailure(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	recorded := &recordedEvents{}
	svc := NewStaffService(client, recorded.deps(nil))
	fb.on("GET /admin/staff", http.StatusOK, janeAndOmar)
	page, err := svc.ListPage(context.Background(), adminCaller, "")
	require.NoError(t, err)

	fb.on("DELETE /admin/delete_staff/s1", http.StatusOK, `{"Status":false}`)
	err = svc.Delete(context.Background(), adminCaller, page, "s1")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete staff.", page.Error)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "s1", page.Items[0].ID)

	fb.on("DELETE /admin/delete_staff/s1", http.StatusOK, `{"Status":true}`)
	page.Error = ""
	require.NoError(t, svc.Delete(context.Background(), adminCaller, page, "s1"))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, []events.EventType{events.EventStaffDeleted}, recorded.types())
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewStaffService(client, Dependencies{})

	assert.Equal(t, "Category name is required.", Message(svc.CreateCategory(context.Background(), adminCaller, "  ")))

	fb.on("POST /admin/add_category", http.StatusOK, `{"Status":true}`)
	require.NoError(t, svc.CreateCategory(context.Background(), adminCaller, "Deckhand"))
}
