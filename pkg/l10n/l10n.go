// Package l10n formats dates and amounts the way the club's German
// mail templates expect them.
package l10n

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

var months = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatDateTime renders t as "Mo, 07. März 2022, 19:00".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d. %s %d, %02d:%02d",
		weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatDayMonth renders t as "07. März".
func FormatDayMonth(t time.Time) string {
	return fmt.Sprintf("%02d. %s", t.Day(), months[t.Month()-1])
}

// FormatEuro renders an amount as "5,00 €".
func FormatEuro(amount float64) string {
	return FormatEuroWithoutSymbol(amount) + " €"
}

// FormatEuroWithoutSymbol renders an amount as "5,00" (comma decimals).
func FormatEuroWithoutSymbol(amount float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", amount), ".", ",")
}
