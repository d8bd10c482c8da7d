package book_event

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/internal/domain"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
	"github.com/sv-web/sve-backend/internal/mail"
	"github.com/sv-web/sve-backend/pkg/ptr"
)

type fakeEventRepo struct {
	events          map[string]*domain.Event
	subscribersFull bool
	waitingListFull bool
	nextNumber      int64
}

func (f *fakeEventRepo) GetForUpdate(_ context.Context, id string) (*domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(f.events))
	for _, event := range f.events {
		events = append(events, event)
	}
	return events, nil
}

func (f *fakeEventRepo) IncrementSubscribers(_ context.Context, id string) (*domain.EventCounter, error) {
	if f.subscribersFull {
		return nil, eventRepo.ErrNoCapacity
	}
	event := f.events[id]
	event.Subscribers++
	counter := event.Counter()
	return &counter, nil
}

func (f *fakeEventRepo) IncrementWaitingList(_ context.Context, id string) (*domain.EventCounter, error) {
	if f.waitingListFull {
		return nil, eventRepo.ErrNoCapacity
	}
	event := f.events[id]
	event.WaitingList++
	counter := event.Counter()
	return &counter, nil
}

func (f *fakeEventRepo) NextBookingNumber(_ context.Context, _ int) (int64, error) {
	return f.nextNumber, nil
}

type fakeLedger struct {
	appended bool
	amount   float64
	err      error
}

func (f *fakeLedger) AppendBooking(_ context.Context, _ *domain.Event, _ *domain.EventBooking, amount float64) error {
	if f.err != nil {
		return f.err
	}
	f.appended = true
	f.amount = amount
	return nil
}

type fakeNews struct {
	subscription *domain.Subscription
	sendEmail    bool
}

func (f *fakeNews) Subscribe(_ context.Context, subscription domain.Subscription, sendEmail bool) error {
	f.subscription = &subscription
	f.sendEmail = sendEmail
	return nil
}

type fakeAccounts struct {
	account *mail.Account
}

func (f *fakeAccounts) ByTopic(domain.Topic) (*mail.Account, error) {
	return f.account, nil
}

func (f *fakeAccounts) ByAddress(address string) (*mail.Account, error) {
	if address != f.account.Address {
		return nil, errors.New("no account")
	}
	return f.account, nil
}

type fakeMailer struct {
	account *mail.Account
	message *mail.Message
	err     error
}

func (f *fakeMailer) Send(account *mail.Account, message mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.account = account
	f.message = &message
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingLogger struct {
	nopLogger
	errors []string
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:              "yoga-1",
		Type:            domain.TypeFitness,
		Name:            "Yoga",
		Visible:         true,
		Dates:           []time.Time{time.Date(2022, time.March, 7, 19, 0, 0, 0, time.UTC)},
		MaxSubscribers:  10,
		Subscribers:     3,
		MaxWaitingList:  5,
		CostMember:      25,
		CostNonMember:   35,
		Location:        "Turnhalle",
		BookingTemplate: "Hallo ${firstname}, Buchung ${booking_number} für ${name} ist bestätigt. Preis: ${price}",
		WaitingTemplate: "Hallo ${firstname}, Du stehst auf der Warteliste für ${name}.",
	}
}

func testRequest() *Request {
	return &Request{Booking: domain.EventBooking{
		EventID:   "yoga-1",
		FirstName: "Max",
		LastName:  "Mustermann",
		Street:    "Hauptstr. 1",
		City:      "72184 Eutingen",
		Email:     "max@example.com",
		Member:    ptr.Ptr(true),
	}}
}

func newTestUseCase(repo *fakeEventRepo) (*UseCase, *fakeLedger, *fakeNews, *fakeMailer) {
	ledger := &fakeLedger{}
	news := &fakeNews{}
	mailer := &fakeMailer{}
	accounts := &fakeAccounts{account: &mail.Account{Address: "fitness@sv-eutingen.de"}}

	uc := NewUseCase(repo, ledger, news, accounts, mailer, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)}
	return uc, ledger, news, mailer
}

func TestExecuteBooksEvent(t *testing.T) {
	repo := &fakeEventRepo{
		events:     map[string]*domain.Event{"yoga-1": testEvent()},
		nextNumber: 1042,
	}
	uc, ledger, news, mailer := newTestUseCase(repo)

	response, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, MessageBooked, response.Message)
	require.Len(t, response.Counters, 1)
	assert.Equal(t, int64(4), response.Counters[0].Subscribers)

	assert.True(t, ledger.appended)
	assert.Equal(t, 25.0, ledger.amount)

	assert.Nil(t, news.subscription)

	require.NotNil(t, mailer.message)
	assert.Equal(t, "max@example.com", mailer.message.To)
	assert.Equal(t, "[Fitness@SVE] Bestätigung Buchung", mailer.message.Subject)
	assert.Contains(t, mailer.message.Body, "Buchung 22-1042")
}

func TestExecuteFallsBackToWaitingList(t *testing.T) {
	repo := &fakeEventRepo{
		events:          map[string]*domain.Event{"yoga-1": testEvent()},
		subscribersFull: true,
		nextNumber:      1042,
	}
	uc, _, _, mailer := newTestUseCase(repo)

	response, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, MessageWaitingList, response.Message)
	require.Len(t, response.Counters, 1)
	assert.Equal(t, int64(1), response.Counters[0].WaitingList)

	require.NotNil(t, mailer.message)
	assert.Equal(t, "[Fitness@SVE] Bestätigung Warteliste", mailer.message.Subject)
	assert.Contains(t, mailer.message.Body, "Warteliste")
	assert.NotContains(t, mailer.message.Body, "22-1042")
}

func TestExecuteBookedOut(t *testing.T) {
	repo := &fakeEventRepo{
		events:          map[string]*domain.Event{"yoga-1": testEvent()},
		subscribersFull: true,
		waitingListFull: true,
	}
	uc, ledger, _, mailer := newTestUseCase(repo)

	response, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Equal(t, MessageGenericFailure, response.Message)
	assert.False(t, ledger.appended)
	assert.Nil(t, mailer.message)
}

func TestExecuteSubscribesToNewsOnOptIn(t *testing.T) {
	repo := &fakeEventRepo{
		events:     map[string]*domain.Event{"yoga-1": testEvent()},
		nextNumber: 1000,
	}
	uc, _, news, _ := newTestUseCase(repo)

	req := testRequest()
	req.Booking.Updates = ptr.Ptr(true)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, news.subscription)
	assert.Equal(t, "max@example.com", news.subscription.Email)
	assert.Equal(t, []domain.Topic{domain.TopicFitness}, news.subscription.Topics)
	assert.False(t, news.sendEmail)
}

func TestExecuteRejectsIncompleteBooking(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]*domain.Event{"yoga-1": testEvent()}}
	uc, ledger, _, _ := newTestUseCase(repo)

	req := testRequest()
	req.Booking.Email = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, ledger.appended)
}

func TestExecuteLogsPayloadsOnLedgerFailure(t *testing.T) {
	repo := &fakeEventRepo{
		events:     map[string]*domain.Event{"yoga-1": testEvent()},
		nextNumber: 1000,
	}
	ledger := &fakeLedger{err: errors.New("sheets unavailable")}
	accounts := &fakeAccounts{account: &mail.Account{Address: "fitness@sv-eutingen.de"}}
	log := &recordingLogger{}

	uc := NewUseCase(repo, ledger, &fakeNews{}, accounts, &fakeMailer{}, fakeTxManager{}, log)
	uc.timeProvider = fixedTime{now: time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrInternal)

	// the spot is already taken, the log must carry enough to replay the
	// row by hand
	require.NotEmpty(t, log.errors)
	assert.Contains(t, log.errors[0], "max@example.com")
	assert.Contains(t, log.errors[0], "yoga-1")
}

func TestExecuteLogsPayloadsOnMailFailure(t *testing.T) {
	repo := &fakeEventRepo{
		events:     map[string]*domain.Event{"yoga-1": testEvent()},
		nextNumber: 1000,
	}
	accounts := &fakeAccounts{account: &mail.Account{Address: "fitness@sv-eutingen.de"}}
	log := &recordingLogger{}

	uc := NewUseCase(repo, &fakeLedger{}, &fakeNews{}, accounts, &fakeMailer{err: errors.New("smtp down")}, fakeTxManager{}, log)
	uc.timeProvider = fixedTime{now: time.Date(2022, time.January, 10, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrInternal)

	require.NotEmpty(t, log.errors)
	assert.Contains(t, log.errors[0], "max@example.com")
	assert.Contains(t, log.errors[0], "yoga-1")
}

func TestExecuteUnknownEvent(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]*domain.Event{}}
	uc, _, _, _ := newTestUseCase(repo)

	req := testRequest()
	req.Booking.EventID = "missing"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
