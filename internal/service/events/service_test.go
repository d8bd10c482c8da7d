package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/internal/domain"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
	"github.com/sv-web/sve-backend/pkg/ptr"
)

type fakeRepo struct {
	events map[string]*domain.Event
	order  []string
	saved  []*domain.Event
}

func newFakeRepo(events ...*domain.Event) *fakeRepo {
	repo := &fakeRepo{events: make(map[string]*domain.Event)}
	for _, event := range events {
		repo.events[event.ID] = event
		repo.order = append(repo.order, event.ID)
	}
	return repo
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		events = append(events, r.events[id])
	}
	return events, nil
}

func (r *fakeRepo) Save(_ context.Context, event *domain.Event) error {
	r.saved = append(r.saved, event)
	if _, ok := r.events[event.ID]; !ok {
		r.order = append(r.order, event.ID)
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return eventRepo.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListFiltersAndSorts(t *testing.T) {
	bookedUp := &domain.Event{ID: "full", Visible: true, SortIndex: 1, MaxSubscribers: 1, Subscribers: 1}
	hidden := &domain.Event{ID: "hidden", Visible: false, SortIndex: 2, MaxSubscribers: 10}
	beta := &domain.Event{ID: "beta", Visible: true, Beta: true, SortIndex: 3, MaxSubscribers: 10}
	open := &domain.Event{ID: "open", Visible: true, SortIndex: 4, MaxSubscribers: 10}

	svc := NewService(newFakeRepo(bookedUp, hidden, beta, open), nopLogger{})

	events, err := svc.List(context.Background(), false, nil)
	require.NoError(t, err)
	ids := eventIDs(events)
	// booked up events go last, hidden ones disappear
	assert.Equal(t, []string{"beta", "open", "full"}, ids)

	events, err = svc.List(context.Background(), false, ptr.Ptr(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, eventIDs(events))

	events, err = svc.List(context.Background(), true, nil)
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestCounters(t *testing.T) {
	visible := &domain.Event{ID: "a", Visible: true, MaxSubscribers: 10, Subscribers: 3}
	hidden := &domain.Event{ID: "b", Visible: false, MaxSubscribers: 10}

	svc := NewService(newFakeRepo(visible, hidden), nopLogger{})

	counters, err := svc.Counters(context.Background())
	require.NoError(t, err)
	require.Len(t, counters, 1)
	assert.Equal(t, "a", counters[0].ID)
	assert.Equal(t, int64(3), counters[0].Subscribers)
}

func TestUpdateMergesExistingEvent(t *testing.T) {
	stored := &domain.Event{ID: "ev", Visible: false, Name: "FitForFun", MaxSubscribers: 10}
	repo := newFakeRepo(stored)
	svc := NewService(repo, nopLogger{})

	updated, err := svc.Update(context.Background(), domain.PartialEvent{ID: "ev", Visible: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Visible)
	assert.Equal(t, "FitForFun", updated.Name)
	require.Len(t, repo.saved, 1)
}

func TestUpdateRejectsIncompleteNewEvent(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), domain.PartialEvent{ID: "new", Visible: ptr.Ptr(true)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeRepo(&domain.Event{ID: "ev", Visible: true}), nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "ev"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "ev"), ErrEventNotFound)
}

func eventIDs(events []*domain.Event) []string {
	ids := make([]string, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}
	return ids
}
