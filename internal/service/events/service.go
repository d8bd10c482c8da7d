// Package events serves the event listings of the website and the
// administrative event management.
package events

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sv-web/sve-backend/internal/domain"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
)

// Service manages events.
type Service struct {
	repo EventRepository
	log  Logger
}

// NewService creates a new events service.
func NewService(repo EventRepository, log Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns events for the website. By default only visible events are
// returned; beta narrows them to the matching early booking state and all
// disables the filtering entirely. Booked up events sort last, events with
// the same availability keep their sort index order.
func (s *Service) List(ctx context.Context, all bool, beta *bool) ([]*domain.Event, error) {
	events, err := s.filtered(ctx, all, beta)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		bookedUpI := events[i].IsBookedUp()
		bookedUpJ := events[j].IsBookedUp()
		if bookedUpI == bookedUpJ {
			return events[i].SortIndex < events[j].SortIndex
		}
		return !bookedUpI
	})
	return events, nil
}

// Counters returns the availability counters of all visible events.
func (s *Service) Counters(ctx context.Context) ([]domain.EventCounter, error) {
	events, err := s.filtered(ctx, false, nil)
	if err != nil {
		return nil, err
	}

	counters := make([]domain.EventCounter, 0, len(events))
	for _, event := range events {
		counters = append(counters, event.Counter())
	}
	return counters, nil
}

// Update applies a partial event update. Existing events keep every
// attribute the update leaves out, unknown ids create a new event from the
// update (which then has to be complete).
func (s *Service) Update(ctx context.Context, partial domain.PartialEvent) (*domain.Event, error) {
	var event domain.Event

	stored, err := s.repo.GetByID(ctx, partial.ID)
	switch {
	case err == nil:
		event = partial.MergeInto(*stored)
	case errors.Is(err, eventRepo.ErrEventNotFound):
		event, err = partial.ToEvent()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	default:
		return nil, fmt.Errorf("%w: load event: %v", ErrInternal, err)
	}

	if err := s.repo.Save(ctx, &event); err != nil {
		return nil, fmt.Errorf("%w: save event: %v", ErrInternal, err)
	}

	s.log.Info("Event %s saved", event.ID)
	return &event, nil
}

// Delete removes an event.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, eventRepo.ErrEventNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: delete event: %v", ErrInternal, err)
	}

	s.log.Info("Event %s deleted", id)
	return nil
}

func (s *Service) filtered(ctx context.Context, all bool, beta *bool) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrInternal, err)
	}
	if all {
		return events, nil
	}

	filtered := make([]*domain.Event, 0, len(events))
	for _, event := range events {
		if !event.Visible {
			continue
		}
		if beta != nil && *beta != event.Beta {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, nil
}
