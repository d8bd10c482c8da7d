package book_event

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/service/news"
	"github.com/sv-web/sve-backend/pkg/l10n"
)

var paydayPattern = regexp.MustCompile(`\$\{payday:(\d+)\}`)

// renderBody fills the booking confirmation template of an event. Waiting
// list confirmations carry no booking number, their ${booking_number}
// placeholder stays untouched.
func renderBody(template string, booking *domain.EventBooking, event *domain.Event, bookingNumber string, now time.Time) string {
	replacer := strings.NewReplacer(
		"${firstname}", strings.TrimSpace(booking.FirstName),
		"${lastname}", strings.TrimSpace(booking.LastName),
		"${name}", strings.TrimSpace(event.Name),
		"${location}", event.Location,
		"${price}", l10n.FormatEuro(booking.Cost(event)),
		"${dates}", formatDates(event),
	)
	body := replacer.Replace(template)
	if bookingNumber != "" {
		body = strings.ReplaceAll(body, "${booking_number}", bookingNumber)
	}
	body = replacePayday(body, event, now)
	if booking.SubscribeUpdates() {
		body += updatesPostscript(event.Type)
	}
	return body
}

func formatDates(event *domain.Event) string {
	lines := make([]string, len(event.Dates))
	for i, date := range event.Dates {
		lines[i] = fmt.Sprintf("- %s Uhr", l10n.FormatDateTime(date))
	}
	return strings.Join(lines, "\n")
}

// replacePayday resolves ${payday} and ${payday:N}. The payday is N days
// (default 14) before the first event date, but never earlier than
// tomorrow. Events without dates keep the placeholder untouched.
func replacePayday(body string, event *domain.Event, now time.Time) string {
	if len(event.Dates) == 0 {
		return body
	}
	firstDate := event.Dates[0]

	placeholder := "${payday}"
	days := 14
	if match := paydayPattern.FindStringSubmatch(body); match != nil {
		placeholder = match[0]
		// an unparseable day count (overflow) keeps the default
		if parsed, err := strconv.Atoi(match[1]); err == nil {
			days = parsed
		}
	}

	payday := firstDate.AddDate(0, 0, -days)
	tomorrow := now.AddDate(0, 0, 1)
	if payday.Before(tomorrow) {
		payday = tomorrow
	}

	return strings.ReplaceAll(body, placeholder, l10n.FormatDayMonth(payday))
}

// updatesPostscript is appended when the booking opted in to news updates.
func updatesPostscript(eventType domain.EventType) string {
	kind := "Events"
	if eventType == domain.TypeFitness {
		kind = "Kursangebote"
	}
	return fmt.Sprintf("\n\nPS: Ab sofort erhältst Du automatisch eine E-Mail, sobald neue %s online sind.\n%s", kind, news.UnsubscribeNote)
}
