package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// ReportKind names one of the tabular report endpoints.
type ReportKind string

const (
	ReportPayments ReportKind = "payments"
	ReportSupplies ReportKind = "supplies"
	ReportBookings ReportKind = "bookings"
)

// ReportKinds lists the tabular reports in display order.
var ReportKinds = []ReportKind{ReportPayments, ReportSupplies, ReportBookings}

// DailyReport returns today's user and booking counts.
func (c *Client) DailyReport(ctx context.Context, token string) (domain.DailyReport, error) {
	const endpoint = "GET /api/reports/daily"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/api/reports/daily", token: token})
	if err != nil {
		return domain.DailyReport{}, err
	}
	var report domain.DailyReport
	if err := json.Unmarshal(body, &report); err != nil {
		return domain.DailyReport{}, decodeError(endpoint, err)
	}
	return report, nil
}

// Report returns the rows of a tabular report.
func (c *Client) Report(ctx context.Context, token string, kind ReportKind) ([]domain.Row, error) {
	return c.rows(ctx, token, "GET /api/reports/"+string(kind), "/api/reports/"+string(kind))
}

func (c *Client) rows(ctx context.Context, token, endpoint, path string) ([]domain.Row, error) {
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: path, token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Row](endpoint, body, "data", "payments", "rows")
}
