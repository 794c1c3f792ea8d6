package domain

import "errors"

// DateLayout is the wire format for booking dates
const DateLayout = "2006-01-02"

var (
	// ErrBookingNotFound is returned when a booking id has no matching row
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPetNotFound is returned when a booking references a pet that does not exist
	ErrPetNotFound = errors.New("pet not found")

	// ErrVendorNotFound is returned when a vendor id has no matching row
	ErrVendorNotFound = errors.New("vendor not found")
)
