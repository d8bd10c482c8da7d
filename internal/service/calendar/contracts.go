package calendar

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

// AppointmentsClient lists upcoming calendar entries.
type AppointmentsClient interface {
	Appointments(ctx context.Context, calendarID string, maxResults int) ([]*domain.Appointment, error)
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
