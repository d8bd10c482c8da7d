package prebook_event

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/usecase/book_event"
)

// EventRepository loads the prebooked event.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

// LedgerClient checks whether the link data already appears in the payment
// ledger.
type LedgerClient interface {
	DetectBooking(ctx context.Context, event *domain.Event, booking *domain.EventBooking) (bool, error)
}

// BookingUseCase runs the actual booking once the link is validated.
type BookingUseCase interface {
	Execute(ctx context.Context, req *book_event.Request) (domain.BookingResponse, error)
}

// Logger is the logging surface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
