package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltonkaiton/mombasa-admin/internal/backend"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

func TestBookingUpdateStatus(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	metrics := &statusCounter{}
	svc := NewBookingService(client, Dependencies{Metrics: metrics})

	err := svc.UpdateStatus(context.Background(), adminCaller, "b1", "lost")
	assert.Equal(t, "Select a valid booking status.", Message(err))
	assert.Zero(t, fb.count())

	fb.on("PUT /bookings/b1", http.StatusOK, `{"Status":true}`)
	require.NoError(t, svc.UpdateStatus(context.Background(), adminCaller, "b1", "approved"))

	fb.on("PUT /bookings/b1", http.StatusOK, `{"Status":false}`)
	err = svc.UpdateStatus(context.Background(), adminCaller, "b1", "cancelled")
	assert.Equal(t, "Failed to update booking.", Message(err))
	assert.Equal(t, []string{"booking:approved:ok", "booking:cancelled:failed"}, metrics.calls)
}

func TestBookingListAndDetail(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewBookingService(client, Dependencies{})
	fb.on("GET /bookings", http.StatusOK, `[{"_id":"b1","user_id":{"_id":"u1","full_name":"Amina"},"route":"Likoni","booking_status":"pending"},{"_id":"b2","user_id":"u2","route":"Mtongwe","booking_status":"approved"}]`)

	page, err := svc.ListPage(context.Background(), adminCaller, "amina")
	require.NoError(t, err)
	require.Len(t, page.Visible(), 1)
	assert.Equal(t, "b1", page.Visible()[0].ID)

	_, err = svc.Detail(context.Background(), adminCaller, "b9")
	assert.Equal(t, "Booking not found.", Message(err))
}

func TestReportTablesSurviveOneFailure(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewReportService(client, Dependencies{})
	fb.on("GET /api/reports/payments", http.StatusOK, `[{"_id":"p1","amount":100}]`)
	fb.on("GET /api/reports/supplies", http.StatusInternalServerError, ``)
	fb.on("GET /api/reports/bookings", http.StatusOK, `[]`)

	tables, err := svc.Tables(context.Background(), adminCaller)
	require.NoError(t, err)
	require.Len(t, tables, len(backend.ReportKinds))
	assert.Len(t, tables[0].Rows, 1)
	assert.Equal(t, "Failed to fetch report.", tables[1].Error)
	assert.Empty(t, tables[2].Rows)
}

func TestDailyReport(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewReportService(client, Dependencies{})
	fb.on("GET /api/reports/daily", http.StatusOK, `{"pendingUsers":1,"activeUsers":3,"pendingBookings":0,"approvedBookings":6}`)

	page, err := svc.Daily(context.Background(), adminCaller)
	require.NoError(t, err)
	require.Len(t, page.Metrics, 4)
	assert.Equal(t, domain.Metric{Label: "Approved Bookings", Value: 6, Color: "success"}, page.Metrics[3])
	assert.Len(t, page.Chart.Slices, 3)

	fb.on("GET /api/reports/daily", http.StatusBadGateway, ``)
	page, err = svc.Daily(context.Background(), adminCaller)
	require.NoError(t, err)
	assert.Equal(t, "Failed to load daily report.", page.Error)
}

func TestSupplierCreateAndDelete(t *testing.T) {
	t.Parallel()

	fb, client := newFakeBackend(t)
	svc := NewSupplierService(client, Dependencies{})

	err := svc.Create(context.Background(), adminCaller, domain.SupplierInput{Name: "Bahari Fuel"})
	assert.Equal(t, "Name, phone and password are required.", Message(err))
	assert.Zero(t, fb.count())

	fb.on("GET /admin/suppliers", http.StatusOK, `[{"_id":"p1","name":"Bahari Fuel","status":"active"}]`)
	fb.on("DELETE /admin/suppliers/p1", http.StatusInternalServerError, ``)
	page, err := svc.ListPage(context.Background(), adminCaller, "")
	require.NoError(t, err)
	require.Error(t, svc.Delete(context.Background(), adminCaller, page, "p1"))
	assert.Equal(t, "Delete failed", page.Error)
	assert.Len(t, page.Items, 1)

	err = svc.Update(context.Background(), adminCaller, "p1", domain.SupplierInput{Name: "Bahari", Phone: "0700", Status: "closed"})
	assert.Equal(t, "Select a valid supplier status.", Message(err))
}
