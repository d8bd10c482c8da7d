package create_booking

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
	bookEvent "github.com/sv-web/sve-backend/internal/usecase/book_event"
)

type BookEventUseCase interface {
	Execute(ctx context.Context, req *bookEvent.Request) (domain.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
