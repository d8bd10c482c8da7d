package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/pkg/ptr"
)

func TestHeaderPositions(t *testing.T) {
	headerRow := []string{
		"SVE-Mitglied",
		"Buchungsdatum",
		"Vorname",
		"Nachname",
		"Email",
		"Straße & Nr",
		"PLZ & Ort",
		"Telefon",
		"Betrag",
		"Kommentar",
		"Bezahlt",
	}

	positions, err := headerPositions(headerRow)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 4, 7, 0, 8, 10, 9}, positions)
}

func TestHeaderPositionsMissing(t *testing.T) {
	_, err := headerPositions([]string{"Buchungsdatum", "Vorname"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nachname")
}

func TestMatchesPerson(t *testing.T) {
	booking := &domain.EventBooking{
		FirstName: "Max",
		LastName:  "Mustermann",
		Street:    "Hauptstr. 1",
		City:      "72184 Eutingen",
		Email:     "max@example.com",
		Phone:     ptr.Ptr("0123456"),
		Member:    ptr.Ptr(true),
	}
	// columns in header order: buchungsdatum..kommentar
	positions := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	row := []string{
		"01.02.2022 10:00:00",
		"Max ", " Mustermann", "Hauptstr. 1", "72184 Eutingen",
		"max@example.com", "0123456", "J",
		"25,00 €", "N", "Pre-Booking",
	}

	// the read-back phone cell has no apostrophe, the format marker is
	// swallowed on write
	assert.True(t, matchesPerson(row, positions, personCells(booking)))

	// manually entered rows may still carry one
	row[6] = "'0123456"
	assert.True(t, matchesPerson(row, positions, personCells(booking)))

	// case differences are a different person
	row[5] = "MAX@example.com"
	assert.False(t, matchesPerson(row, positions, personCells(booking)))
}
