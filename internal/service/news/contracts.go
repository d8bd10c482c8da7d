package news

import (
	"context"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/mail"
)

// SubscriptionRepository is the storage surface of the news service.
type SubscriptionRepository interface {
	List(ctx context.Context) ([]*domain.Subscription, error)
	AddTopics(ctx context.Context, email string, topics []domain.Topic) ([]domain.Topic, error)
	RemoveTopics(ctx context.Context, email string, topics []domain.Topic) error
}

// MailAccounts resolves the sending account of a welcome mail.
type MailAccounts interface {
	ByTopic(topic domain.Topic) (*mail.Account, error)
}

// Mailer delivers composed messages.
type Mailer interface {
	Send(account *mail.Account, message mail.Message) error
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
