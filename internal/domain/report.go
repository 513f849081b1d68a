package domain

// DailyReport is the backend's aggregate of users and bookings by state.
type DailyReport struct {
	Date             string `json:"date"`
	PendingUsers     int64  `json:"pendingUsers"`
	ActiveUsers      int64  `json:"activeUsers"`
	PendingBookings  int64  `json:"pendingBookings"`
	ApprovedBookings int64  `json:"approvedBookings"`
}

// Metric is one labelled figure of a report.
type Metric struct {
	Label string
	Value int64
	Color string
}

// Metrics returns the report figures in card order.
func (r DailyReport) Metrics() []Metric {
	return []Metric{
		{Label: "Pending Users", Value: r.PendingUsers, Color: "warning"},
		{Label: "Active Users", Value: r.ActiveUsers, Color: "primary"},
		{Label: "Pending Bookings", Value: r.PendingBookings, Color: "danger"},
		{Label: "Approved Bookings", Value: r.ApprovedBookings, Color: "success"},
	}
}

// Row is an opaque record from a report endpoint whose schema the console
// does not own.
type Row map[string]any
