package book_event

import (
	"context"
	"time"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/mail"
)

// EventRepository is the storage surface of the booking workflow.
type EventRepository interface {
	GetForUpdate(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	IncrementSubscribers(ctx context.Context, id string) (*domain.EventCounter, error)
	IncrementWaitingList(ctx context.Context, id string) (*domain.EventCounter, error)
	NextBookingNumber(ctx context.Context, year int) (int64, error)
}

// LedgerClient appends confirmed bookings to the payment ledger sheet.
type LedgerClient interface {
	AppendBooking(ctx context.Context, event *domain.Event, booking *domain.EventBooking, amount float64) error
}

// NewsSubscriber adds newsletter subscriptions for bookings that opted in
// to updates.
type NewsSubscriber interface {
	Subscribe(ctx context.Context, subscription domain.Subscription, sendEmail bool) error
}

// MailAccounts resolves the sending account of a confirmation mail.
type MailAccounts interface {
	ByTopic(topic domain.Topic) (*mail.Account, error)
	ByAddress(address string) (*mail.Account, error)
}

// Mailer delivers composed messages.
type Mailer interface {
	Send(account *mail.Account, message mail.Message) error
}

// TransactionManager runs the capacity decision inside a serializable
// transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time (replaceable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
