package get_events

import (
	"time"

	"github.com/sv-web/sve-backend/internal/domain"
)

// EventResponse is the HTTP representation of an event.
type EventResponse struct {
	ID                   string           `json:"id"`
	SheetID              string           `json:"sheetId"`
	GID                  int64            `json:"gid"`
	Type                 domain.EventType `json:"type"`
	Name                 string           `json:"name"`
	SortIndex            int64            `json:"sortIndex"`
	Visible              bool             `json:"visible"`
	Beta                 bool             `json:"beta"`
	ShortDescription     string           `json:"shortDescription"`
	Description          string           `json:"description"`
	Image                string           `json:"image"`
	Light                bool             `json:"light"`
	Dates                []time.Time      `json:"dates"`
	CustomDate           *string          `json:"customDate,omitempty"`
	DurationInMinutes    int64            `json:"durationInMinutes"`
	MaxSubscribers       int64            `json:"maxSubscribers"`
	Subscribers          int64            `json:"subscribers"`
	CostMember           float64          `json:"costMember"`
	CostNonMember        float64          `json:"costNonMember"`
	WaitingList          int64            `json:"waitingList"`
	MaxWaitingList       int64            `json:"maxWaitingList"`
	Location             string           `json:"location"`
	BookingTemplate      string           `json:"bookingTemplate"`
	WaitingTemplate      string           `json:"waitingTemplate"`
	AltBookingButtonText *string          `json:"altBookingButtonText,omitempty"`
	AltEmailAddress      *string          `json:"altEmailAddress,omitempty"`
	ExternalOperator     bool             `json:"externalOperator"`
}

// FromDomain converts a domain event into its HTTP representation.
func FromDomain(event *domain.Event) EventResponse {
	return EventResponse{
		ID:                   event.ID,
		SheetID:              event.SheetID,
		GID:                  event.GID,
		Type:                 event.Type,
		Name:                 event.Name,
		SortIndex:            event.SortIndex,
		Visible:              event.Visible,
		Beta:                 event.Beta,
		ShortDescription:     event.ShortDescription,
		Description:          event.Description,
		Image:                event.Image,
		Light:                event.Light,
		Dates:                event.Dates,
		CustomDate:           event.CustomDate,
		DurationInMinutes:    event.DurationInMinutes,
		MaxSubscribers:       event.MaxSubscribers,
		Subscribers:          event.Subscribers,
		CostMember:           event.CostMember,
		CostNonMember:        event.CostNonMember,
		WaitingList:          event.WaitingList,
		MaxWaitingList:       event.MaxWaitingList,
		Location:             event.Location,
		BookingTemplate:      event.BookingTemplate,
		WaitingTemplate:      event.WaitingTemplate,
		AltBookingButtonText: event.AltBookingButtonText,
		AltEmailAddress:      event.AltEmailAddress,
		ExternalOperator:     event.ExternalOperator,
	}
}
