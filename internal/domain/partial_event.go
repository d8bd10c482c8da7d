package domain

import (
	"fmt"
	"time"
)

// PartialEvent is an administrator's update to an event. Only non-nil
// fields are applied; everything else keeps its stored value.
type PartialEvent struct {
	ID                   string
	SheetID              *string
	GID                  *int64
	Type                 *EventType
	Name                 *string
	SortIndex            *int64
	Visible              *bool
	Beta                 *bool
	ShortDescription     *string
	Description          *string
	Image                *string
	Light                *bool
	Dates                []time.Time
	CustomDate           *string
	DurationInMinutes    *int64
	MaxSubscribers       *int64
	Subscribers          *int64
	CostMember           *float64
	CostNonMember        *float64
	WaitingList          *int64
	MaxWaitingList       *int64
	Location             *string
	BookingTemplate      *string
	WaitingTemplate      *string
	AltBookingButtonText *string
	AltEmailAddress      *string
	ExternalOperator     *bool
}

// MergeInto applies the partial update onto stored, field by field,
// preferring the incoming value when present.
func (p *PartialEvent) MergeInto(stored Event) Event {
	merged := stored
	if p.SheetID != nil {
		merged.SheetID = *p.SheetID
	}
	if p.GID != nil {
		merged.GID = *p.GID
	}
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.SortIndex != nil {
		merged.SortIndex = *p.SortIndex
	}
	if p.Visible != nil {
		merged.Visible = *p.Visible
	}
	if p.Beta != nil {
		merged.Beta = *p.Beta
	}
	if p.ShortDescription != nil {
		merged.ShortDescription = *p.ShortDescription
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Image != nil {
		merged.Image = *p.Image
	}
	if p.Light != nil {
		merged.Light = *p.Light
	}
	if p.Dates != nil {
		merged.Dates = p.Dates
	}
	if p.CustomDate != nil {
		merged.CustomDate = p.CustomDate
	}
	if p.DurationInMinutes != nil {
		merged.DurationInMinutes = *p.DurationInMinutes
	}
	if p.MaxSubscribers != nil {
		merged.MaxSubscribers = *p.MaxSubscribers
	}
	if p.Subscribers != nil {
		merged.Subscribers = *p.Subscribers
	}
	if p.CostMember != nil {
		merged.CostMember = *p.CostMember
	}
	if p.CostNonMember != nil {
		merged.CostNonMember = *p.CostNonMember
	}
	if p.WaitingList != nil {
		merged.WaitingList = *p.WaitingList
	}
	if p.MaxWaitingList != nil {
		merged.MaxWaitingList = *p.MaxWaitingList
	}
	if p.Location != nil {
		merged.Location = *p.Location
	}
	if p.BookingTemplate != nil {
		merged.BookingTemplate = *p.BookingTemplate
	}
	if p.WaitingTemplate != nil {
		merged.WaitingTemplate = *p.WaitingTemplate
	}
	if p.AltBookingButtonText != nil {
		merged.AltBookingButtonText = p.AltBookingButtonText
	}
	if p.AltEmailAddress != nil {
		merged.AltEmailAddress = p.AltEmailAddress
	}
	if p.ExternalOperator != nil {
		merged.ExternalOperator = *p.ExternalOperator
	}
	return merged
}

// ToEvent converts the partial record into a complete event. Used when an
// update targets an id that does not exist yet; every mandatory field must
// be present.
func (p *PartialEvent) ToEvent() (Event, error) {
	event := Event{ID: p.ID, CustomDate: p.CustomDate, AltBookingButtonText: p.AltBookingButtonText, AltEmailAddress: p.AltEmailAddress}
	for _, field := range []struct {
		name string
		set  func() bool
	}{
		{"sheetId", func() bool { return setIf(p.SheetID, &event.SheetID) }},
		{"gid", func() bool { return setIf(p.GID, &event.GID) }},
		{"type", func() bool { return setIf(p.Type, &event.Type) }},
		{"name", func() bool { return setIf(p.Name, &event.Name) }},
		{"sortIndex", func() bool { return setIf(p.SortIndex, &event.SortIndex) }},
		{"visible", func() bool { return setIf(p.Visible, &event.Visible) }},
		{"beta", func() bool { return setIf(p.Beta, &event.Beta) }},
		{"shortDescription", func() bool { return setIf(p.ShortDescription, &event.ShortDescription) }},
		{"description", func() bool { return setIf(p.Description, &event.Description) }},
		{"image", func() bool { return setIf(p.Image, &event.Image) }},
		{"light", func() bool { return setIf(p.Light, &event.Light) }},
		{"dates", func() bool {
			if p.Dates == nil {
				return false
			}
			event.Dates = p.Dates
			return true
		}},
		{"durationInMinutes", func() bool { return setIf(p.DurationInMinutes, &event.DurationInMinutes) }},
		{"maxSubscribers", func() bool { return setIf(p.MaxSubscribers, &event.MaxSubscribers) }},
		{"subscribers", func() bool { return setIf(p.Subscribers, &event.Subscribers) }},
		{"costMember", func() bool { return setIf(p.CostMember, &event.CostMember) }},
		{"costNonMember", func() bool { return setIf(p.CostNonMember, &event.CostNonMember) }},
		{"waitingList", func() bool { return setIf(p.WaitingList, &event.WaitingList) }},
		{"maxWaitingList", func() bool { return setIf(p.MaxWaitingList, &event.MaxWaitingList) }},
		{"location", func() bool { return setIf(p.Location, &event.Location) }},
		{"bookingTemplate", func() bool { return setIf(p.BookingTemplate, &event.BookingTemplate) }},
		{"waitingTemplate", func() bool { return setIf(p.WaitingTemplate, &event.WaitingTemplate) }},
		{"externalOperator", func() bool { return setIf(p.ExternalOperator, &event.ExternalOperator) }},
	} {
		if !field.set() {
			return Event{}, fmt.Errorf("attribute '%s' is missing", field.name)
		}
	}
	return event, nil
}

func setIf[T any](src *T, dst *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}
