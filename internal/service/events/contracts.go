package events

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

// EventRepository is the storage surface of the events service.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Save(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
