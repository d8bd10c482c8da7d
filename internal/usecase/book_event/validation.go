package book_event

import (
	"fmt"
	"strings"
)

// validateRequest checks that all mandatory booking fields are filled.
func validateRequest(req *Request) error {
	required := map[string]string{
		"eventId":   req.Booking.EventID,
		"firstName": req.Booking.FirstName,
		"lastName":  req.Booking.LastName,
		"street":    req.Booking.Street,
		"city":      req.Booking.City,
		"email":     req.Booking.Email,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	if !strings.Contains(req.Booking.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	return nil
}
