package booking

import "errors"

var (
	// ErrUnknownTest is returned when the requested test_id is not in the catalog
	ErrUnknownTest = errors.New("unknown test_id")

	// ErrInvalidName is returned when the customer name is missing
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidPhone is returned when the phone number is missing
	ErrInvalidPhone = errors.New("phone is required")

	// ErrInvalidDate is returned when the appointment date is missing
	ErrInvalidDate = errors.New("date is required")
)
