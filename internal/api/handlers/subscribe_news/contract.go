package subscribe_news

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type NewsService interface {
	Subscribe(ctx context.Context, subscription domain.Subscription, sendEmail bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
