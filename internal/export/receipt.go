package export

import (
	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
)

// Line is one labelled value of a printable receipt.
type Line struct {
	Label string
	Value string
}

// Receipt is a printable single-record document.
type Receipt struct {
	Title    string
	Filename string
	Lines    []Line
}

// BookingReceipt lays out the passenger receipt for b.
func BookingReceipt(b domain.Booking) Receipt {
	return Receipt{
		Title:    "Booking Receipt",
		Filename: "Booking_" + b.ID,
		Lines: []Line{
			{Label: "Booking ID", Value: b.ID},
			{Label: "User ID", Value: view.Dash(b.User.ID)},
			{Label: "Booking Type", Value: view.Dash(b.BookingType)},
			{Label: "Travel Date", Value: view.Dash(b.TravelDate)},
			{Label: "Travel Time", Value: view.Dash(b.TravelTime)},
			{Label: "Route", Value: view.Dash(b.Route)},
			{Label: "Amount Paid", Value: view.Amount(b.AmountPaid)},
			{Label: "Payment Status", Value: view.Dash(b.PaymentStatus)},
			{Label: "Booking Status", Value: view.Dash(string(b.Status))},
		},
	}
}

// BookingReceipts lays out one receipt per booking.
func BookingReceipts(bookings []domain.Booking) []Receipt {
	out := make([]Receipt, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingReceipt(b))
	}
	return out
}
