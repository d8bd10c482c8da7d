package get_appointments

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type CalendarService interface {
	Appointments(ctx context.Context, calendar string, maxResults int) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
