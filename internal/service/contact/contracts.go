package contact

import (
	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/mail"
)

// MailAccounts resolves the account responsible for a contact topic.
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
