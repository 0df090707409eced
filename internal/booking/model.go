package booking

import (
	"strings"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
)

// Request represents the request body for creating a booking
type Request struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	TestID string `json:"test_id"`
	Date   string `json:"date"`
}

// Validate checks the booking request is well-formed. The name is kept
// verbatim: it is the loyalty key and must not be normalized.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrInvalidPhone
	}
	if strings.TrimSpace(r.Date) == "" {
		return ErrInvalidDate
	}
	return nil
}

// Result is the composed outcome of a successful booking.
type Result struct {
	Status     string       `json:"status"`
	BookingFor string       `json:"booking_for"`
	Date       string       `json:"date"`
	Test       catalog.Test `json:"test"`
	Bookings   int          `json:"bookings"`
	Offer      string       `json:"offer"`
}
