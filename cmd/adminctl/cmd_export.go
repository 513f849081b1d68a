package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/export"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
)

var (
	exportFormat string
	exportOut    string
	exportStatus string
)

var exportCmd = &cobra.Command{
	Use:   "export [orders|bookings|staff|users]",
	Short: "Export backend records to xlsx or csv",
	Long: `Downloads one kind of record and writes it as a spreadsheet.

Examples:
  adminctl export orders --format csv
  adminctl export users --status pending --out pending.xlsx`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"orders", "bookings", "staff", "users"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatXLSX), "xlsx or csv")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (defaults to <kind>-<date>.<format>, - for stdout)")
	exportCmd.Flags().StringVar(&exportStatus, "status", string(domain.UserStatusActive), "users tab to export")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	caller, err := adminCaller()
	if err != nil {
		return err
	}
	deps := service.Dependencies{Logger: logger}
	ctx := cmd.Context()
	kind := args[0]

	var sheet export.Sheet
	switch kind {
	case "orders":
		orders, err := service.NewSupplierService(client, deps).Orders(ctx, caller)
		if err != nil {
			return fmt.Errorf("orders: %s", service.Message(err))
		}
		sheet = export.OrdersSheet(orders)
	case "bookings":
		bookings, err := service.NewBookingService(client, deps).All(ctx, caller)
		if err != nil {
			return fmt.Errorf("bookings: %s", service.Message(err))
		}
		sheet = export.BookingsSheet(bookings)
	case "staff":
		staff, err := service.NewStaffService(client, deps).All(ctx, caller)
		if err != nil {
			return fmt.Errorf("staff: %s", service.Message(err))
		}
		sheet = export.StaffSheet(staff)
	case "users":
		status, err := domain.ParseUserStatus(exportStatus)
		if err != nil {
			return err
		}
		users, err := service.NewUserService(client, deps).All(ctx, caller, status)
		if err != nil {
			return fmt.Errorf("users: %s", service.Message(err))
		}
		sheet = export.UsersSheet(status.Title()+" Users", users)
	}
	if sheet.Empty() {
		fmt.Fprintf(cmd.ErrOrStderr(), "no %s to export\n", kind)
	}
	return writeSheets(cmd, kind, exportOut, format, sheet)
}

// writeSheets writes to out, to a dated default file name when out is empty,
// or to stdout when out is "-".
func writeSheets(cmd *cobra.Command, base, out string, format export.Format, sheets ...export.Sheet) error {
	if out == "-" {
		return export.Write(cmd.OutOrStdout(), format, sheets...)
	}
	if out == "" {
		out = fmt.Sprintf("%s-%s.%s", base, time.Now().Format("2006-01-02"), format)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := export.Write(f, format, sheets...); err != nil {
		_ = f.Close()
		_ = os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
	return nil
}
