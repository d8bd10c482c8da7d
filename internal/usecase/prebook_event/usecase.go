package prebook_event

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/sv-web/sve-backend/internal/domain"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
	"github.com/sv-web/sve-backend/internal/usecase/book_event"
	"github.com/sv-web/sve-backend/pkg/ptr"
)

// User facing messages for invalidated booking links.
const (
	MessagePrebookingEnded = "Der Buchungslink ist nicht mehr gültig da die Frühbuchungsphase zu Ende ist."

	MessagePrebookingUsed = "Der Buchungslink wurde schon benutzt und ist daher ungültig."
)

// tokenFieldCount is the number of #-separated fields inside a booking
// link token: event id, first name, last name, street, city, email, phone
// and the membership flag.
const tokenFieldCount = 8

// UseCase redeems an early booking link. The link token carries the
// complete person data, so redeeming it books the event without a form.
type UseCase struct {
	eventRepo EventRepository
	ledger    LedgerClient
	booking   BookingUseCase
	logger    Logger
}

// NewUseCase creates a new prebooking use case.
func NewUseCase(eventRepo EventRepository, ledger LedgerClient, booking BookingUseCase, logger Logger) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		ledger:    ledger,
		booking:   booking,
		logger:    logger,
	}
}

// Execute validates and redeems the booking link token.
func (uc *UseCase) Execute(ctx context.Context, token string) (domain.BookingResponse, error) {
	// 1. Decode the token into a booking
	booking, err := decodeToken(token)
	if err != nil {
		uc.logger.Warn("PrebookEvent: %v", err)
		return domain.BookingResponse{}, err
	}
	uc.logger.Info("PrebookEvent: event=%s, email=%s", booking.EventID, booking.Email)

	// 2. Load the event
	event, err := uc.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return domain.BookingResponse{}, ErrEventNotFound
		}
		return domain.BookingResponse{}, fmt.Errorf("%w: load event: %v", ErrInternal, err)
	}

	// 3. Links die with the early booking phase
	if !event.Beta {
		uc.logger.Warn("PrebookEvent: phase ended for event %s, booking of %s rejected", event.ID, booking.Email)
		return domain.FailureResponse(MessagePrebookingEnded), nil
	}

	// 4. A link whose data already shows up in the ledger has been used.
	// An unreadable ledger must not block the booking, it only disables
	// the replay guard.
	used, err := uc.ledger.DetectBooking(ctx, event, booking)
	if err != nil {
		uc.logger.Error("PrebookEvent: replay check for event %s failed, proceeding: %v", event.ID, err)
		used = false
	}
	if used {
		uc.logger.Warn("PrebookEvent: link for event %s already used by %s", event.ID, booking.Email)
		return domain.FailureResponse(MessagePrebookingUsed), nil
	}

	// 5. Book the event
	return uc.booking.Execute(ctx, &book_event.Request{Booking: *booking})
}

func decodeToken(token string) (*domain.EventBooking, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrInvalidToken, token, err)
	}

	fields := strings.Split(string(decoded), "#")
	if len(fields) != tokenFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidToken, tokenFieldCount, len(fields))
	}

	return &domain.EventBooking{
		EventID:   fields[0],
		FirstName: fields[1],
		LastName:  fields[2],
		Street:    fields[3],
		City:      fields[4],
		Email:     fields[5],
		Phone:     ptr.Ptr(fields[6]),
		Member:    ptr.Ptr(fields[7] == "J"),
		Updates:   ptr.Ptr(false),
		Comments:  ptr.Ptr("Pre-Booking"),
	}, nil
}
