package get_subscriptions

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
)

type NewsService interface {
	Subscriptions(ctx context.Context) (map[domain.Topic][]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
