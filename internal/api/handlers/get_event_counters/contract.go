package get_event_counters

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type EventsService interface {
	Counters(ctx context.Context) ([]domain.EventCounter, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
