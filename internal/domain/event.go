package domain

import (
	"fmt"
	"time"
)

// EventType categorizes an event and selects the mail account and
// newsletter topic used for its communication.
type EventType string

const (
	TypeFitness EventType = "Fitness"
	TypeEvents  EventType = "Events"
)

// Valid reports whether the type is one of the known categories.
func (t EventType) Valid() bool {
	return t == TypeFitness || t == TypeEvents
}

// Topic returns the newsletter topic matching the event type.
func (t EventType) Topic() Topic {
	if t == TypeFitness {
		return TopicFitness
	}
	return TopicEvents
}

// SubjectPrefix returns the mail subject prefix for the event type,
// e.g. "[Events@SVE]".
func (t EventType) SubjectPrefix() string {
	return fmt.Sprintf("[%s@SVE]", t)
}

// Event is a bookable club event. The Subscribers and WaitingList counters
// are only ever mutated by the booking workflow; administrators edit the
// remaining fields through a partial update merge.
type Event struct {
	ID                   string
	SheetID              string
	GID                  int64
	Type                 EventType
	Name                 string
	SortIndex            int64
	Visible              bool
	Beta                 bool
	ShortDescription     string
	Description          string
	Image                string
	Light                bool
	Dates                []time.Time
	CustomDate           *string
	DurationInMinutes    int64
	MaxSubscribers       int64
	Subscribers          int64
	CostMember           float64
	CostNonMember        float64
	WaitingList          int64
	MaxWaitingList       int64
	Location             string
	BookingTemplate      string
	WaitingTemplate      string
	AltBookingButtonText *string
	AltEmailAddress      *string
	ExternalOperator     bool
}

// UnlimitedSubscribers is the MaxSubscribers sentinel for events without
// a capacity limit.
const UnlimitedSubscribers int64 = -1

// IsBookedUp reports whether neither the subscriber list nor the waiting
// list can take another booking.
func (e *Event) IsBookedUp() bool {
	if e.MaxSubscribers == UnlimitedSubscribers {
		return false
	}
	return e.Subscribers >= e.MaxSubscribers && e.WaitingList >= e.MaxWaitingList
}

// Price returns the member or non-member price.
func (e *Event) Price(isMember bool) float64 {
	if isMember {
		return e.CostMember
	}
	return e.CostNonMember
}

// Counter returns the availability counters of the event.
func (e *Event) Counter() EventCounter {
	return EventCounter{
		ID:             e.ID,
		MaxSubscribers: e.MaxSubscribers,
		Subscribers:    e.Subscribers,
		WaitingList:    e.WaitingList,
		MaxWaitingList: e.MaxWaitingList,
	}
}

// EventCounter is the per-event availability snapshot returned to the
// website so it can refresh the displayed free spots.
type EventCounter struct {
	ID             string `json:"id"`
	MaxSubscribers int64  `json:"maxSubscribers"`
	Subscribers    int64  `json:"subscribers"`
	WaitingList    int64  `json:"waitingList"`
	MaxWaitingList int64  `json:"maxWaitingList"`
}

// IsBookedUp reports whether both counters are exhausted.
func (c EventCounter) IsBookedUp() bool {
	if c.MaxSubscribers == UnlimitedSubscribers {
		return false
	}
	return c.Subscribers >= c.MaxSubscribers && c.WaitingList >= c.MaxWaitingList
}
