package domain

import "fmt"

// BookingStatus enumerates booking lifecycle states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingStatuses lists every selectable booking status.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusApproved,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// ParseBookingStatus validates a raw status value.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	for _, s := range BookingStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", raw)
}

// Title is the human label for the status.
func (s BookingStatus) Title() string {
	switch s {
	case BookingStatusPending:
		return "Pending"
	case BookingStatusApproved:
		return "Approved"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Booking is a passenger, vehicle or cargo reservation on a crossing.
type Booking struct {
	ID               string        `json:"_id"`
	User             Ref           `json:"user_id"`
	BookingType      string        `json:"booking_type"`
	TravelDate       string        `json:"travel_date"`
	TravelTime       string        `json:"travel_time"`
	Route            string        `json:"route"`
	NumPassengers    Amount        `json:"num_passengers"`
	VehicleType      string        `json:"vehicle_type"`
	VehiclePlate     string        `json:"vehicle_plate"`
	CargoDescription string        `json:"cargo_description"`
	CargoWeightKg    Amount        `json:"cargo_weight_kg"`
	AmountPaid       Amount        `json:"amount_paid"`
	PaymentStatus    string        `json:"payment_status"`
	PaymentMethod    string        `json:"payment_method"`
	TransactionID    string        `json:"transaction_id"`
	Status           BookingStatus `json:"booking_status"`
	CreatedAt        Timestamp     `json:"createdAt"`
}

func (b Booking) RecordID() string { return b.ID }
