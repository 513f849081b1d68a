package service

import (
	"context"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// BookingBackend is the part of the backend behind the bookings pages.
type BookingBackend interface {
	ListBookings(ctx context.Context, token string) ([]domain.Booking, error)
	GetBooking(ctx context.Context, token, id string) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, token, id string, status domain.BookingStatus) error
	BookingPayments(ctx context.Context, token string) ([]domain.Row, error)
}

// BookingSearchFields are the columns the bookings search box matches.
func BookingSearchFields(b domain.Booking) []string {
	return []string{
		b.ID, b.User.ID, b.User.Label, b.BookingType, b.Route,
		b.TravelDate, b.PaymentStatus, string(b.Status),
	}
}

// BookingService manages ferry bookings.
type BookingService struct {
	base
	backend BookingBackend
}

// NewBookingService constructs the service.
func NewBookingService(backend BookingBackend, deps Dependencies) *BookingService {
	return &BookingService{base: newBase(deps), backend: backend}
}

// ListPage loads the bookings table.
func (s *BookingService) ListPage(ctx context.Context, caller Caller, search string) (*view.List[domain.Booking], error) {
	bookings, err := s.backend.ListBookings(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("list_bookings", err, "Failed to load bookings.", "Something went wrong while fetching bookings.")
		page := view.Failed[domain.Booking](msg)
		page.Search = search
		return page, err
	}
	page := view.NewList(bookings, BookingSearchFields)
	page.Search = search
	return page, nil
}

// All returns every booking, for receipts and exports.
func (s *BookingService) All(ctx context.Context, caller Caller) ([]domain.Booking, error) {
	bookings, err := s.backend.ListBookings(ctx, caller.Token)
	if err != nil {
		return nil, s.failure("list_bookings", err, "Failed to load bookings.", "Something went wrong while fetching bookings.")
	}
	return bookings, nil
}

// Detail loads one booking.
func (s *BookingService) Detail(ctx context.Context, caller Caller, id string) (domain.Booking, error) {
	booking, err := s.backend.GetBooking(ctx, caller.Token, id)
	if err != nil {
		return domain.Booking{}, s.failure("get_booking", err, "Booking not found.", "Error fetching booking details.")
	}
	return booking, nil
}

// UpdateStatus sets the booking status picked on the detail page.
func (s *BookingService) UpdateStatus(ctx context.Context, caller Caller, id, raw string) error {
	status, err := domain.ParseBookingStatus(raw)
	if err != nil {
		return apperrors.NewValidationError("Select a valid booking status.", map[string]any{"status": raw})
	}
	err = s.backend.UpdateBookingStatus(ctx, caller.Token, id, status)
	s.recordStatus("booking", string(status), err == nil)
	if err != nil {
		return s.failure("update_booking", err, "Failed to update booking.", "Error updating booking.")
	}
	s.publish(ctx, caller, events.EventBookingStatusChanged, id, events.StatusChangedPayload{To: string(status)})
	return nil
}

// Payments loads the booking payments table.
func (s *BookingService) Payments(ctx context.Context, caller Caller) (view.Table, error) {
	rows, err := s.backend.BookingPayments(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("booking_payments", err, "Failed to load payments.", "Error fetching payments.")
		return view.Table{Title: "Booking Payments", Error: msg}, err
	}
	return view.NewTable("Booking Payments", rows), nil
}
