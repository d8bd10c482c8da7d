package prebook_event

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type PrebookEventUseCase interface {
	Execute(ctx context.Context, token string) (domain.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
