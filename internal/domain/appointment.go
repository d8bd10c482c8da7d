package domain

import "time"

// Appointment is a calendar entry shown on the website. Whole-day entries
// carry StartDate/EndDate, timed entries StartDateTime/EndDateTime.
type Appointment struct {
	ID            string     `json:"id"`
	SortIndex     int        `json:"sortIndex"`
	Title         *string    `json:"title"`
	Link          *string    `json:"link"`
	Description   *string    `json:"description"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	StartDateTime *time.Time `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime"`
}
