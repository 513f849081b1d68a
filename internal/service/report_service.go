package service

import (
	"context"

	"github.com/eltonkaiton/mombasa-admin/internal/backend"
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
)

// ReportBackend is the part of the backend behind the reports pages.
type ReportBackend interface {
	DailyReport(ctx context.Context, token string) (domain.DailyReport, error)
	Report(ctx context.Context, token string, kind backend.ReportKind) ([]domain.Row, error)
}

var reportTitles = map[backend.ReportKind]string{
	backend.ReportPayments: "Payments Report",
	backend.ReportSupplies: "Supplies Report",
	backend.ReportBookings: "Bookings Report",
}

// DailyPage is the dashboard summary: metric cards and charts.
type DailyPage struct {
	Report  domain.DailyReport
	Metrics []domain.Metric
	Chart   view.Chart
	Error   string
}

// ReportService reads the backend's aggregate reports.
type ReportService struct {
	base
	backend ReportBackend
}

// NewReportService constructs the service.
func NewReportService(backend ReportBackend, deps Dependencies) *ReportService {
	return &ReportService{base: newBase(deps), backend: backend}
}

// Daily loads today's summary.
func (s *ReportService) Daily(ctx context.Context, caller Caller) (*DailyPage, error) {
	report, err := s.backend.DailyReport(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("daily_report", err, "Failed to load daily report.", "Failed to load daily report.")
		return &DailyPage{Error: msg}, err
	}
	metrics := report.Metrics()
	return &DailyPage{Report: report, Metrics: metrics, Chart: view.NewChart(metrics)}, nil
}

// Tables loads the payments, supplies and bookings reports. One failing
// report does not hide the others.
func (s *ReportService) Tables(ctx context.Context, caller Caller) ([]view.Table, error) {
	tables := make([]view.Table, 0, len(backend.ReportKinds))
	for _, kind := range backend.ReportKinds {
		rows, err := s.backend.Report(ctx, caller.Token, kind)
		if err != nil {
			msg, err := s.pageError("report_"+string(kind), err, "Failed to fetch report.", "Failed to fetch report.")
			if err != nil {
				return nil, err
			}
			tables = append(tables, view.Table{Title: reportTitles[kind], Error: msg})
			continue
		}
		tables = append(tables, view.NewTable(reportTitles[kind], rows))
	}
	return tables, nil
}
