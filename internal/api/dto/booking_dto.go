package dto

// BookingStatusForm is the status select on the booking detail page.
type BookingStatusForm struct {
	Status string `form:"booking_status" validate:"required"`
}

// Validate checks field formats.
func (f *BookingStatusForm) Validate() error {
	return validate.Struct(f)
}
