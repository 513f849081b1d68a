package backend

import (
	"context"
	"net/http"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// ListBookings returns every booking.
func (c *Client) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	const endpoint = "GET /bookings"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/bookings", token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Booking](endpoint, body, "bookings")
}

// GetBooking loads one booking.
func (c *Client) GetBooking(ctx context.Context, token, id string) (domain.Booking, error) {
	const endpoint = "GET /bookings/:id"
	body, err := c.do(ctx, request{endpoint: endpoint, method: http.MethodGet, path: "/bookings/" + escape(id), token: token})
	if err != nil {
		return domain.Booking{}, err
	}
	return firstRecord[domain.Booking](endpoint, body)
}

// UpdateBookingStatus sets a booking's status.
func (c *Client) UpdateBookingStatus(ctx context.Context, token, id string, status domain.BookingStatus) error {
	const endpoint = "PUT /bookings/:id"
	body, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPut,
		path:     "/bookings/" + escape(id),
		token:    token,
		body:     map[string]string{"booking_status": string(status)},
	})
	if err != nil {
		return err
	}
	return decodeResult(endpoint, body, nil)
}

// BookingPayments returns the payment rows recorded against bookings.
func (c *Client) BookingPayments(ctx context.Context, token string) ([]domain.Row, error) {
	return c.rows(ctx, token, "GET /bookings/payments", "/bookings/payments")
}
