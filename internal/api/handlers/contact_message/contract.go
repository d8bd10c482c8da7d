package contact_message

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type ContactService interface {
	Message(ctx context.Context, message domain.ContactMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
