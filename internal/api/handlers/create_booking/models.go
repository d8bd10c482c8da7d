package create_booking

import (
	"github.com/sv-web/sve-backend/internal/domain"
	bookEvent "github.com/sv-web/sve-backend/internal/usecase/book_event"
)

// BookingRequest is the HTTP model of a booking submission.
type BookingRequest struct {
	EventID   string  `json:"eventId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Member    *bool   `json:"member,omitempty"`
	Updates   *bool   `json:"updates,omitempty"`
	Comments  *string `json:"comments,omitempty"`
}

// ToUseCaseRequest converts the HTTP model into the use case request.
func (r *BookingRequest) ToUseCaseRequest() *bookEvent.Request {
	return &bookEvent.Request{
		Booking: domain.EventBooking{
			EventID:   r.EventID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Street:    r.Street,
			City:      r.City,
			Email:     r.Email,
			Phone:     r.Phone,
			Member:    r.Member,
			Updates:   r.Updates,
			Comments:  r.Comments,
		},
	}
}
