package export

import (
	"strconv"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
)

// Sheet is a titled table ready to be written as XLSX, CSV or printed.
type Sheet struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Empty reports whether the sheet has no data rows.
func (s Sheet) Empty() bool {
	return len(s.Rows) == 0
}

func optionalAmount(a domain.Amount) string {
	if a == 0 {
		return "-"
	}
	return view.Amount(a)
}

// OrdersSheet is the all-orders receipt table.
func OrdersSheet(orders []domain.Order) Sheet {
	sheet := Sheet{
		Title: "Orders",
		Headers: []string{
			"#", "Supplier Name", "Item Name", "Quantity", "Amount",
			"Status", "Finance Status", "Delivery Status", "Delivered At", "Created At",
		},
		Rows: make([][]string, 0, len(orders)),
	}
	for i, o := range orders {
		sheet.Rows = append(sheet.Rows, []string{
			strconv.Itoa(i + 1),
			view.Dash(o.SupplierName),
			view.Dash(o.ItemName),
			optionalAmount(o.Quantity),
			optionalAmount(o.Amount),
			view.Dash(o.Status),
			view.Dash(o.FinanceStatus),
			view.Dash(o.DeliveryStatus),
			view.DateTime(o.DeliveredAt),
			view.DateTime(o.CreatedAt),
		})
	}
	return sheet
}

// BookingsSheet mirrors the bookings table.
func BookingsSheet(bookings []domain.Booking) Sheet {
	sheet := Sheet{
		Title: "Bookings",
		Headers: []string{
			"ID", "User ID", "Type", "Date", "Time", "Route",
			"Amount Paid", "Payment", "Status",
		},
		Rows: make([][]string, 0, len(bookings)),
	}
	for _, b := range bookings {
		sheet.Rows = append(sheet.Rows, []string{
			b.ID,
			view.Dash(b.User.ID),
			view.Dash(b.BookingType),
			view.Dash(b.TravelDate),
			view.Dash(b.TravelTime),
			view.Dash(b.Route),
			view.Amount(b.AmountPaid),
			view.Dash(b.PaymentStatus),
			b.Status.Title(),
		})
	}
	return sheet
}

// StaffSheet mirrors the staff table.
func StaffSheet(staff []domain.StaffMember) Sheet {
	sheet := Sheet{
		Title:   "Staff",
		Headers: []string{"Name", "Email", "Salary", "Address", "Category"},
		Rows:    make([][]string, 0, len(staff)),
	}
	for _, s := range staff {
		sheet.Rows = append(sheet.Rows, []string{
			s.Name,
			s.Email,
			view.Amount(s.Salary),
			view.Dash(s.Address),
			view.Dash(s.Category),
		})
	}
	return sheet
}

// UsersSheet mirrors a users tab.
func UsersSheet(title string, users []domain.User) Sheet {
	sheet := Sheet{
		Title:   title,
		Headers: []string{"Full Name", "Email", "Phone", "Status", "Registered"},
		Rows:    make([][]string, 0, len(users)),
	}
	for _, u := range users {
		sheet.Rows = append(sheet.Rows, []string{
			u.FullName,
			u.Email,
			view.Dash(u.Phone),
			u.Status.Title(),
			view.Date(u.CreatedAt),
		})
	}
	return sheet
}

// TableSheet converts a report table.
func TableSheet(t view.Table) Sheet {
	return Sheet{Title: t.Title, Headers: t.Headings(), Rows: t.Rows}
}
