package book_event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/pkg/ptr"
)

func templateEvent() *domain.Event {
	return &domain.Event{
		ID:   "kurs-1",
		Type: domain.TypeFitness,
		Name: " Rückenfit ",
		Dates: []time.Time{
			time.Date(2022, time.March, 7, 19, 0, 0, 0, time.UTC),
			time.Date(2022, time.March, 14, 19, 0, 0, 0, time.UTC),
		},
		CostMember:    25,
		CostNonMember: 35,
		Location:      "Turnhalle Eutingen",
	}
}

func templateBooking() *domain.EventBooking {
	return &domain.EventBooking{
		FirstName: " Max ",
		LastName:  "Mustermann",
		Email:     "max@example.com",
		Member:    ptr.Ptr(true),
	}
}

func TestRenderBodyReplacesPlaceholders(t *testing.T) {
	template := "Hallo ${firstname} ${lastname},\n" +
		"Deine Buchung ${booking_number} für ${name} in ${location}.\n" +
		"Termine:\n${dates}\n" +
		"Preis: ${price}, zahlbar bis ${payday}."
	now := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)

	body := renderBody(template, templateBooking(), templateEvent(), "22-1042", now)

	assert.Contains(t, body, "Hallo Max Mustermann,")
	assert.Contains(t, body, "Buchung 22-1042 für Rückenfit in Turnhalle Eutingen")
	assert.Contains(t, body, "- Mo, 07. März 2022, 19:00 Uhr\n- Mo, 14. März 2022, 19:00 Uhr")
	assert.Contains(t, body, "Preis: 25,00 €")
	// 14 days before the first date
	assert.Contains(t, body, "zahlbar bis 21. Februar.")
}

func TestRenderBodyCustomPaydayOffset(t *testing.T) {
	now := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)

	body := renderBody("Zahlbar bis ${payday:7}.", templateBooking(), templateEvent(), "22-1000", now)

	assert.Equal(t, "Zahlbar bis 28. Februar.", body)
}

func TestRenderBodyOverflowingPaydayOffsetUsesDefault(t *testing.T) {
	now := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)

	body := renderBody("Zahlbar bis ${payday:99999999999999999999}.", templateBooking(), templateEvent(), "22-1000", now)

	assert.Equal(t, "Zahlbar bis 21. Februar.", body)
}

func TestRenderBodyClampsPaydayToTomorrow(t *testing.T) {
	// less than 14 days until the first date
	now := time.Date(2022, time.March, 1, 12, 0, 0, 0, time.UTC)

	body := renderBody("Zahlbar bis ${payday}.", templateBooking(), templateEvent(), "22-1000", now)

	assert.Equal(t, "Zahlbar bis 02. März.", body)
}

func TestRenderBodyKeepsPaydayWithoutDates(t *testing.T) {
	event := templateEvent()
	event.Dates = nil
	now := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)

	body := renderBody("Zahlbar bis ${payday}.", templateBooking(), event, "22-1000", now)

	assert.Equal(t, "Zahlbar bis ${payday}.", body)
}

func TestRenderBodyKeepsBookingNumberOnWaitingList(t *testing.T) {
	now := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)

	body := renderBody("Nummer: ${booking_number}", templateBooking(), templateEvent(), "", now)

	assert.Equal(t, "Nummer: ${booking_number}", body)
}

func TestRenderBodyAppendsUpdatesPostscript(t *testing.T) {
	booking := templateBooking()
	booking.Updates = ptr.Ptr(true)
	now := time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)

	body := renderBody("Hallo ${firstname}.", booking, templateEvent(), "22-1000", now)

	assert.Contains(t, body, "PS: Ab sofort erhältst Du automatisch eine E-Mail, sobald neue Kursangebote online sind.")
	assert.Contains(t, body, "https://www.sv-eutingen.de/newsletter#abmelden")
}
