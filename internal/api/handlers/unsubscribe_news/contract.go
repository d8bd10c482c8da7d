package unsubscribe_news

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type NewsService interface {
	Unsubscribe(ctx context.Context, subscription domain.Subscription) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
