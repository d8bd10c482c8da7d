package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/pkg/ptr"
)

func TestIsBookedUp(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		bookedUp bool
	}{
		{
			name:     "free spots",
			event:    Event{MaxSubscribers: 10, Subscribers: 9, MaxWaitingList: 0, WaitingList: 0},
			bookedUp: false,
		},
		{
			name:     "full but waiting list open",
			event:    Event{MaxSubscribers: 10, Subscribers: 10, MaxWaitingList: 5, WaitingList: 4},
			bookedUp: false,
		},
		{
			name:     "full and waiting list full",
			event:    Event{MaxSubscribers: 10, Subscribers: 10, MaxWaitingList: 5, WaitingList: 5},
			bookedUp: true,
		},
		{
			name:     "unlimited never booked up",
			event:    Event{MaxSubscribers: UnlimitedSubscribers, Subscribers: 5000, MaxWaitingList: 0, WaitingList: 0},
			bookedUp: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bookedUp, tt.event.IsBookedUp())
			assert.Equal(t, tt.bookedUp, tt.event.Counter().IsBookedUp())
		})
	}
}

func TestPrice(t *testing.T) {
	event := Event{CostMember: 5, CostNonMember: 10}

	member := EventBooking{Member: ptr.Ptr(true)}
	nonMember := EventBooking{}

	assert.Equal(t, 5.0, member.Cost(&event))
	assert.Equal(t, 10.0, nonMember.Cost(&event))
}

func TestMergeInto(t *testing.T) {
	stored := Event{
		ID:              "ev-1",
		SheetID:         "sheet",
		GID:             42,
		Type:            TypeFitness,
		Name:            "FitForFun",
		SortIndex:       3,
		Visible:         false,
		Dates:           []time.Time{time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)},
		MaxSubscribers:  10,
		Subscribers:     4,
		MaxWaitingList:  5,
		WaitingList:     1,
		CostMember:      5,
		CostNonMember:   10,
		Location:        "Festhalle",
		BookingTemplate: "booking",
		WaitingTemplate: "waiting",
	}

	update := PartialEvent{ID: "ev-1", Visible: ptr.Ptr(true)}
	merged := update.MergeInto(stored)

	// only the visibility changes, everything else keeps its prior value
	assert.True(t, merged.Visible)
	merged.Visible = stored.Visible
	assert.Equal(t, stored, merged)
}

func TestToEvent(t *testing.T) {
	partial := PartialEvent{
		ID:                "ev-2",
		SheetID:           ptr.Ptr("sheet"),
		GID:               ptr.Ptr(int64(0)),
		Type:              ptr.Ptr(TypeEvents),
		Name:              ptr.Ptr("Sommerfest"),
		SortIndex:         ptr.Ptr(int64(1)),
		Visible:           ptr.Ptr(true),
		Beta:              ptr.Ptr(false),
		ShortDescription:  ptr.Ptr("short"),
		Description:       ptr.Ptr("long"),
		Image:             ptr.Ptr("image"),
		Light:             ptr.Ptr(false),
		Dates:             []time.Time{time.Date(2024, 7, 20, 14, 0, 0, 0, time.UTC)},
		DurationInMinutes: ptr.Ptr(int64(120)),
		MaxSubscribers:    ptr.Ptr(int64(50)),
		Subscribers:       ptr.Ptr(int64(0)),
		CostMember:        ptr.Ptr(7.5),
		CostNonMember:     ptr.Ptr(12.5),
		WaitingList:       ptr.Ptr(int64(0)),
		MaxWaitingList:    ptr.Ptr(int64(10)),
		Location:          ptr.Ptr("Sportplatz"),
		BookingTemplate:   ptr.Ptr("booking"),
		WaitingTemplate:   ptr.Ptr("waiting"),
		ExternalOperator:  ptr.Ptr(false),
	}

	event, err := partial.ToEvent()
	require.NoError(t, err)
	assert.Equal(t, "ev-2", event.ID)
	assert.Equal(t, "Sommerfest", event.Name)
	assert.Equal(t, int64(50), event.MaxSubscribers)

	// a missing mandatory attribute is reported by name
	partial.Location = nil
	_, err = partial.ToEvent()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location")
}

func TestParseTopic(t *testing.T) {
	topic, err := ParseTopic("Fitness")
	require.NoError(t, err)
	assert.Equal(t, TopicFitness, topic)

	_, err = ParseTopic("Unknown")
	assert.Error(t, err)
}
