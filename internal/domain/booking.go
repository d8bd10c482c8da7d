package domain

// EventBooking is one booking submission. It is never persisted on its
// own: it is turned into a ledger row and a confirmation mail, then
// discarded.
type EventBooking struct {
	EventID   string
	FirstName string
	LastName  string
	Street    string
	City      string
	Email     string
	Phone     *string
	Member    *bool
	Updates   *bool
	Comments  *string
}

// IsMember reports the membership flag, defaulting to non-member.
func (b *EventBooking) IsMember() bool {
	return b.Member != nil && *b.Member
}

// SubscribeUpdates reports the newsletter opt-in flag.
func (b *EventBooking) SubscribeUpdates() bool {
	return b.Updates != nil && *b.Updates
}

// Cost returns the price the requester has to pay for the event.
func (b *EventBooking) Cost(event *Event) float64 {
	return event.Price(b.IsMember())
}

// BookingResponse is the outcome of a booking or prebooking request. On
// success Counters carries the refreshed availability of every visible
// event so the website can update all displayed counters.
type BookingResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Counters []EventCounter `json:"counter"`
}

// SuccessResponse creates a successful booking response.
func SuccessResponse(message string, counters []EventCounter) BookingResponse {
	return BookingResponse{Success: true, Message: message, Counters: counters}
}

// FailureResponse creates a failed booking response without counters.
func FailureResponse(message string) BookingResponse {
	return BookingResponse{Success: false, Message: message, Counters: []EventCounter{}}
}
