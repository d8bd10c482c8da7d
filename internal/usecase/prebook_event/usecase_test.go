package prebook_event

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/internal/domain"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
	"github.com/sv-web/sve-backend/internal/usecase/book_event"
)

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	return event, nil
}

type fakeLedger struct {
	used bool
	err  error
}

func (f *fakeLedger) DetectBooking(context.Context, *domain.Event, *domain.EventBooking) (bool, error) {
	return f.used, f.err
}

type fakeBooking struct {
	request  *book_event.Request
	response domain.BookingResponse
}

func (f *fakeBooking) Execute(_ context.Context, req *book_event.Request) (domain.BookingResponse, error) {
	f.request = req
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func makeToken(fields ...string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(fields, "#")))
}

func validToken() string {
	return makeToken("yoga-1", "Max", "Mustermann", "Hauptstr. 1", "72184 Eutingen", "max@example.com", "0123456", "J")
}

func newTestUseCase(repo *fakeEventRepo, ledger *fakeLedger) (*UseCase, *fakeBooking) {
	booking := &fakeBooking{response: domain.SuccessResponse(book_event.MessageBooked, []domain.EventCounter{})}
	return NewUseCase(repo, ledger, booking, nopLogger{}), booking
}

func TestExecuteRedeemsBookingLink(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]*domain.Event{
		"yoga-1": {ID: "yoga-1", Beta: true},
	}}
	uc, booking := newTestUseCase(repo, &fakeLedger{})

	response, err := uc.Execute(context.Background(), validToken())
	require.NoError(t, err)

	assert.True(t, response.Success)
	require.NotNil(t, booking.request)
	decoded := booking.request.Booking
	assert.Equal(t, "yoga-1", decoded.EventID)
	assert.Equal(t, "Max", decoded.FirstName)
	assert.Equal(t, "Mustermann", decoded.LastName)
	assert.Equal(t, "max@example.com", decoded.Email)
	require.NotNil(t, decoded.Phone)
	assert.Equal(t, "0123456", *decoded.Phone)
	require.NotNil(t, decoded.Member)
	assert.True(t, *decoded.Member)
	require.NotNil(t, decoded.Updates)
	assert.False(t, *decoded.Updates)
	require.NotNil(t, decoded.Comments)
	assert.Equal(t, "Pre-Booking", *decoded.Comments)
}

func TestExecuteRejectsEndedPhase(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]*domain.Event{
		"yoga-1": {ID: "yoga-1", Beta: false},
	}}
	uc, booking := newTestUseCase(repo, &fakeLedger{})

	response, err := uc.Execute(context.Background(), validToken())
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Equal(t, MessagePrebookingEnded, response.Message)
	assert.Nil(t, booking.request)
}

func TestExecuteRejectsUsedLink(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]*domain.Event{
		"yoga-1": {ID: "yoga-1", Beta: true},
	}}
	uc, booking := newTestUseCase(repo, &fakeLedger{used: true})

	response, err := uc.Execute(context.Background(), validToken())
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Equal(t, MessagePrebookingUsed, response.Message)
	assert.Nil(t, booking.request)
}

func TestExecuteProceedsWhenLedgerUnreadable(t *testing.T) {
	repo := &fakeEventRepo{events: map[string]*domain.Event{
		"yoga-1": {ID: "yoga-1", Beta: true},
	}}
	uc, booking := newTestUseCase(repo, &fakeLedger{err: errors.New("sheets unavailable")})

	response, err := uc.Execute(context.Background(), validToken())
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.NotNil(t, booking.request)
}

func TestExecuteRejectsMalformedToken(t *testing.T) {
	uc, _ := newTestUseCase(&fakeEventRepo{}, &fakeLedger{})

	_, err := uc.Execute(context.Background(), "not base64!")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.Execute(context.Background(), makeToken("too", "few", "fields"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExecuteUnknownEvent(t *testing.T) {
	uc, _ := newTestUseCase(&fakeEventRepo{events: map[string]*domain.Event{}}, &fakeLedger{})

	_, err := uc.Execute(context.Background(), validToken())
	assert.ErrorIs(t, err, ErrEventNotFound)
}
