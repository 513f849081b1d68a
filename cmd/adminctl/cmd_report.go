package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eltonkaiton/mombasa-admin/internal/export"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Read the backend's aggregate reports",
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print today's user and booking counts",
	RunE:  runReportDaily,
}

var reportTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Write the payments, supplies and bookings reports to a workbook",
	RunE:  runReportTables,
}

var reportOut string

func init() {
	reportTablesCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (defaults to reports-<date>.xlsx)")
	reportCmd.AddCommand(reportDailyCmd, reportTablesCmd)
}

func runReportDaily(cmd *cobra.Command, _ []string) error {
	caller, err := adminCaller()
	if err != nil {
		return err
	}
	svc := service.NewReportService(client, service.Dependencies{Logger: logger})
	page, err := svc.Daily(cmd.Context(), caller)
	if err != nil {
		return fmt.Errorf("daily report: %s", service.Message(err))
	}
	if page.Error != "" {
		return fmt.Errorf("daily report: %s", page.Error)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if page.Report.Date != "" {
		fmt.Fprintf(w, "Date\t%s\n", page.Report.Date)
	}
	for _, m := range page.Metrics {
		fmt.Fprintf(w, "%s\t%s\n", m.Label, view.Count(m.Value))
	}
	return w.Flush()
}

func runReportTables(cmd *cobra.Command, _ []string) error {
	caller, err := adminCaller()
	if err != nil {
		return err
	}
	svc := service.NewReportService(client, service.Dependencies{Logger: logger})
	tables, err := svc.Tables(cmd.Context(), caller)
	if err != nil {
		return fmt.Errorf("reports: %s", service.Message(err))
	}
	sheets := make([]export.Sheet, 0, len(tables))
	for _, t := range tables {
		if t.Error != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", t.Title, t.Error)
			continue
		}
		sheets = append(sheets, export.TableSheet(t))
	}
	return writeSheets(cmd, "reports", reportOut, export.FormatXLSX, sheets...)
}
