package book_event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sv-web/sve-backend/internal/domain"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
	"github.com/sv-web/sve-backend/internal/mail"
)

// UseCase books an event: it takes a spot (or waiting list spot) inside a
// serializable transaction, writes the booking into the payment ledger and
// sends the confirmation mail.
type UseCase struct {
	eventRepo    EventRepository
	ledger       LedgerClient
	news         NewsSubscriber
	accounts     MailAccounts
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new booking use case.
func NewUseCase(
	eventRepo EventRepository,
	ledger LedgerClient,
	news NewsSubscriber,
	accounts MailAccounts,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		ledger:       ledger,
		news:         news,
		accounts:     accounts,
		mailer:       mailer,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking workflow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (domain.BookingResponse, error) {
	booking := &req.Booking
	uc.logger.Info("BookEvent: event=%s, email=%s", booking.EventID, booking.Email)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookEvent: validation failed: %v", err)
		return domain.BookingResponse{}, err
	}

	// 2. Take a spot inside a serializable transaction
	result, err := uc.takeSpot(ctx, booking.EventID)
	if err != nil {
		return domain.BookingResponse{}, err
	}
	if result == nil {
		// overbooked events are a data problem worth an alarm, the user
		// just gets the generic failure message
		uc.logger.Error("BookEvent: event %s is booked out", booking.EventID)
		return domain.FailureResponse(MessageGenericFailure), nil
	}
	event := result.event

	// 3. Record the booking in the payment ledger. The full payloads go
	// into the log so a lost row can be replayed by hand.
	if err := uc.ledger.AppendBooking(ctx, event, booking, booking.Cost(event)); err != nil {
		uc.logger.Error("BookEvent: ledger append failed: %v, booking=%s, event=%s", err, serialize(booking), serialize(event))
		return domain.BookingResponse{}, fmt.Errorf("%w: ledger append: %v", ErrInternal, err)
	}

	// 4. Subscribe to news updates when opted in (no welcome mail, the
	// confirmation mail carries the note)
	if booking.SubscribeUpdates() {
		subscription := domain.Subscription{
			Email:  booking.Email,
			Topics: []domain.Topic{event.Type.Topic()},
		}
		if err := uc.news.Subscribe(ctx, subscription, false); err != nil {
			uc.logger.Error("BookEvent: news subscription failed for %s: %v", booking.Email, err)
			return domain.BookingResponse{}, fmt.Errorf("%w: news subscription: %v", ErrInternal, err)
		}
	}

	// 5. Send the confirmation mail
	if err := uc.sendConfirmation(booking, result); err != nil {
		return domain.BookingResponse{}, err
	}

	// 6. Collect the refreshed counters of all visible events
	counters, err := uc.visibleCounters(ctx)
	if err != nil {
		return domain.BookingResponse{}, err
	}

	uc.logger.Info("BookEvent: booking %s of event %s was successful", result.bookingNumber, event.ID)

	message := MessageBooked
	if result.waitingList {
		message = MessageWaitingList
	}
	return domain.SuccessResponse(message, counters), nil
}

// takeSpot runs the capacity decision. It returns nil when the event is
// booked out.
func (uc *UseCase) takeSpot(ctx context.Context, eventID string) (*outcome, error) {
	var result *outcome

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		event, err := uc.eventRepo.GetForUpdate(txCtx, eventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("%w: load event: %v", ErrInternal, err)
		}

		waitingList := false
		counter, err := uc.eventRepo.IncrementSubscribers(txCtx, event.ID)
		if errors.Is(err, eventRepo.ErrNoCapacity) {
			waitingList = true
			counter, err = uc.eventRepo.IncrementWaitingList(txCtx, event.ID)
		}
		if errors.Is(err, eventRepo.ErrNoCapacity) {
			// booked out, leave result nil
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: take spot: %v", ErrInternal, err)
		}

		number, err := uc.eventRepo.NextBookingNumber(txCtx, uc.timeProvider.Now().Year())
		if err != nil {
			return fmt.Errorf("%w: next booking number: %v", ErrInternal, err)
		}

		event.Subscribers = counter.Subscribers
		event.WaitingList = counter.WaitingList
		result = &outcome{
			event:         event,
			waitingList:   waitingList,
			bookingNumber: fmt.Sprintf("%02d-%04d", uc.timeProvider.Now().Year()%100, number),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *UseCase) sendConfirmation(booking *domain.EventBooking, result *outcome) error {
	event := result.event

	var account *mail.Account
	var err error
	if event.AltEmailAddress != nil && *event.AltEmailAddress != "" {
		account, err = uc.accounts.ByAddress(*event.AltEmailAddress)
	} else {
		account, err = uc.accounts.ByTopic(event.Type.Topic())
	}
	if err != nil {
		uc.logger.Error("BookEvent: no mail account for event %s: %v", event.ID, err)
		return fmt.Errorf("%w: resolve mail account: %v", ErrInternal, err)
	}

	subject := fmt.Sprintf("%s Bestätigung Buchung", event.Type.SubjectPrefix())
	template := event.BookingTemplate
	bookingNumber := result.bookingNumber
	if result.waitingList {
		subject = fmt.Sprintf("%s Bestätigung Warteliste", event.Type.SubjectPrefix())
		template = event.WaitingTemplate
		bookingNumber = ""
	}

	message := mail.Message{
		To:      booking.Email,
		Subject: subject,
		Body:    renderBody(template, booking, event, bookingNumber, uc.timeProvider.Now()),
	}
	if err := uc.mailer.Send(account, message); err != nil {
		uc.logger.Error("BookEvent: confirmation mail failed: %v, booking=%s, event=%s", err, serialize(booking), serialize(event))
		return fmt.Errorf("%w: send confirmation: %v", ErrInternal, err)
	}
	return nil
}

// serialize renders a payload for the failure logs. The counter increment
// is already committed when the ledger or mail step fails, so the log line
// has to carry everything needed to replay the booking by hand.
func serialize(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

func (uc *UseCase) visibleCounters(ctx context.Context) ([]domain.EventCounter, error) {
	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrInternal, err)
	}

	counters := make([]domain.EventCounter, 0, len(events))
	for _, event := range events {
		if event.Visible {
			counters = append(counters, event.Counter())
		}
	}
	return counters, nil
}
