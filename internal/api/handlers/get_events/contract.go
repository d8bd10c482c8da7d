package get_events

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type EventsService interface {
	List(ctx context.Context, all bool, beta *bool) ([]*domain.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
