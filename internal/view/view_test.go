package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

func staffFields(s domain.StaffMember) []string {
	return []string{s.Name, s.Email, s.Category}
}

func sampleStaff() []domain.StaffMember {
	return []domain.StaffMember{
		{ID: "s1", Name: "Jane", Email: "jane@x.com", Salary: 50000, Address: "Mombasa", Category: "Deckhand"},
		{ID: "s2", Name: "Omar", Email: "omar@x.com", Salary: 42000, Address: "Likoni", Category: "Engineer"},
		{ID: "s3", Name: "Wanjiku", Email: "wanjiku@x.com", Salary: 61000, Address: "Nyali", Category: "Captain"},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	staff := sampleStaff()

	testCases := []struct {
		term     string
		expected []string
	}{
		{term: "", expected: []string{"s1", "s2", "s3"}},
		{term: "JANE", expected: []string{"s1"}},
		{term: "x.com", expected: []string{"s1", "s2", "s3"}},
		{term: "engin", expected: []string{"s2"}},
		{term: "likoni", expected: []string{}},
		{term: "zzz", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			got := Filter(staff, tc.term, staffFields)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	t.Parallel()

	staff := sampleStaff()
	assert.Equal(t, staff, Filter(staff, "", staffFields))
}

func TestListRemoveAndRestore(t *testing.T) {
	t.Parallel()

	list := NewList(sampleStaff(), staffFields)

	restore := list.Remove("s2")
	require.Len(t, list.Items, 2)
	_, found := list.Find("s2")
	assert.False(t, found)

	restore()
	require.Len(t, list.Items, 3)
	assert.Equal(t, "s2", list.Items[1].ID)

	noop := list.Remove("missing")
	noop()
	assert.Len(t, list.Items, 3)
}

func TestListEmptyFollowsSearch(t *testing.T) {
	t.Parallel()

	list := NewList(sampleStaff(), staffFields)
	assert.False(t, list.Empty())
	list.Search = "nobody"
	assert.True(t, list.Empty())
	assert.Equal(t, 3, list.Count())

	assert.True(t, NewList[domain.StaffMember](nil, staffFields).Empty())
}

func TestMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "50,000", Money(50000))
	assert.Equal(t, "1,250.50", Money(1250.5))
	assert.Equal(t, "0", Money(0))
	assert.Equal(t, "999", Money(999))
	assert.Equal(t, "1,234,567", Amount(domain.Amount(1234567)))
}

func TestDashAndDates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", Dash(""))
	assert.Equal(t, "-", Dash("   "))
	assert.Equal(t, "Likoni", Dash("Likoni"))

	assert.Equal(t, "-", DateTime(domain.Timestamp{}))
	ts := domain.Timestamp{Time: time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)}
	assert.Equal(t, "01 Mar 2025 08:30", DateTime(ts))
	assert.Equal(t, "01 Mar 2025", Date(ts))
}

func TestSectionTitle(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/dashboard":                  "Dashboard",
		"/dashboard/users/pending":    "Pending Users",
		"/dashboard/users":            "Active Users",
		"/dashboard/users/add":        "Add User",
		"/dashboard/staff":            "Employee",
		"/dashboard/edit_staff/s1":    "Employee",
		"/dashboard/bookings/b1":      "Bookings",
		"/dashboard/add_category":     "Category",
		"/dashboard/suppliers/edit/1": "Suppliers",
		"/dashboard/orders/payments":  "Orders",
		"/dashboard/reports":          "Reports",
	}
	for path, expected := range cases {
		assert.Equal(t, expected, SectionTitle(path), path)
	}
}

func TestHumanize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Amount Paid", Humanize("amount_paid"))
	assert.Equal(t, "ID", Humanize("_id"))
	assert.Equal(t, "Ñame Total", Humanize("ñame-total"))
}

func TestNewChart(t *testing.T) {
	t.Parallel()

	report := domain.DailyReport{PendingUsers: 1, ActiveUsers: 4, PendingBookings: 0, ApprovedBookings: 5}
	chart := NewChart(report.Metrics())

	require.Len(t, chart.Bars, 4)
	assert.InDelta(t, 20.0, chart.Bars[0].Percent, 0.001)
	assert.InDelta(t, 100.0, chart.Bars[3].Percent, 0.001)

	require.Len(t, chart.Slices, 3)
	assert.InDelta(t, 0.0, chart.Slices[0].Start, 0.001)
	assert.InDelta(t, 100.0, chart.Slices[2].End, 0.001)
	assert.Contains(t, string(chart.Gradient()), "conic-gradient(#ffc107 0.00% 10.00%")

	empty := NewChart(domain.DailyReport{}.Metrics())
	assert.Empty(t, empty.Slices)
	assert.Equal(t, "background: #e9ecef", string(empty.Gradient()))
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	table := NewTable("Payments", []domain.Row{
		{"amount": 1200.0, "_id": "p1", "method": "mpesa"},
		{"_id": "p2", "user": map[string]any{"full_name": "Amina"}, "paid": true},
	})

	assert.Equal(t, []string{"_id", "amount", "method", "paid", "user"}, table.Columns)
	assert.Equal(t, []string{"ID", "Amount", "Method", "Paid", "User"}, table.Headings())
	assert.Equal(t, []string{"p1", "1,200", "mpesa", "-", "-"}, table.Rows[0])
	assert.Equal(t, []string{"p2", "-", "-", "Yes", "Amina"}, table.Rows[1])
}
