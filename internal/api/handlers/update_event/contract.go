package update_event

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type EventsService interface {
	Update(ctx context.Context, partial domain.PartialEvent) (*domain.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
