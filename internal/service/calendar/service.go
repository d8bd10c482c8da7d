// Package calendar serves the appointment listings of the website.
package calendar

import (
	"context"
	"fmt"

	"github.com/sv-web/sve-backend/internal/domain"
)

const defaultMaxResults = 100

// Service lists upcoming appointments. The website addresses calendars by
// their short name (fitness, events), raw calendar ids pass through for
// the configured calendars only.
type Service struct {
	client    AppointmentsClient
	calendars map[string]string
	log       Logger
}

// NewService creates a new calendar service. calendars maps short names to
// Google calendar ids.
func NewService(client AppointmentsClient, calendars map[string]string, log Logger) *Service {
	return &Service{client: client, calendars: calendars, log: log}
}

// Appointments lists the upcoming entries of the requested calendar.
func (s *Service) Appointments(ctx context.Context, calendar string, maxResults int) ([]*domain.Appointment, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	calendarID, err := s.resolve(calendar)
	if err != nil {
		return nil, err
	}

	appointments, err := s.client.Appointments(ctx, calendarID, maxResults)
	if err != nil {
		s.log.Error("Listing appointments of calendar %s failed: %v", calendar, err)
		return nil, err
	}
	return appointments, nil
}

func (s *Service) resolve(calendar string) (string, error) {
	if calendar == "" {
		calendar = "events"
	}
	if id, ok := s.calendars[calendar]; ok && id != "" {
		return id, nil
	}
	for _, id := range s.calendars {
		if id == calendar {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCalendar, calendar)
}
