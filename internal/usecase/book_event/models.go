package book_event

import "github.com/sv-web/sve-backend/internal/domain"

// User facing messages. The website renders them verbatim, so they stay in
// German.
const (
	MessageBooked = "Die Buchung war erfolgreich. Du bekommst in den nächsten Minuten eine Bestätigung per E-Mail."

	MessageWaitingList = "Du stehst jetzt auf der Warteliste. Wir benachrichtigen Dich, wenn Plätze frei werden."

	MessageGenericFailure = "Leider ist etwas schief gelaufen. Bitte versuche es später noch einmal."
)

// Request is a booking submission.
type Request struct {
	Booking domain.EventBooking
}

// outcome is the result of the transactional capacity decision.
type outcome struct {
	event         *domain.Event
	waitingList   bool
	bookingNumber string
}
