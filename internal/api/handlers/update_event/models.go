package update_event

import (
	"fmt"
	"time"

	"github.com/sv-web/sve-backend/internal/domain"
)

// PartialEventRequest is the HTTP model of an event update. Absent fields
// keep their stored values.
type PartialEventRequest struct {
	ID                   string      `json:"id"`
	SheetID              *string     `json:"sheetId,omitempty"`
	GID                  *int64      `json:"gid,omitempty"`
	Type                 *string     `json:"type,omitempty"`
	Name                 *string     `json:"name,omitempty"`
	SortIndex            *int64      `json:"sortIndex,omitempty"`
	Visible              *bool       `json:"visible,omitempty"`
	Beta                 *bool       `json:"beta,omitempty"`
	ShortDescription     *string     `json:"shortDescription,omitempty"`
	Description          *string     `json:"description,omitempty"`
	Image                *string     `json:"image,omitempty"`
	Light                *bool       `json:"light,omitempty"`
	Dates                []time.Time `json:"dates,omitempty"`
	CustomDate           *string     `json:"customDate,omitempty"`
	DurationInMinutes    *int64      `json:"durationInMinutes,omitempty"`
	MaxSubscribers       *int64      `json:"maxSubscribers,omitempty"`
	Subscribers          *int64      `json:"subscribers,omitempty"`
	CostMember           *float64    `json:"costMember,omitempty"`
	CostNonMember        *float64    `json:"costNonMember,omitempty"`
	WaitingList          *int64      `json:"waitingList,omitempty"`
	MaxWaitingList       *int64      `json:"maxWaitingList,omitempty"`
	Location             *string     `json:"location,omitempty"`
	BookingTemplate      *string     `json:"bookingTemplate,omitempty"`
	WaitingTemplate      *string     `json:"waitingTemplate,omitempty"`
	AltBookingButtonText *string     `json:"altBookingButtonText,omitempty"`
	AltEmailAddress      *string     `json:"altEmailAddress,omitempty"`
	ExternalOperator     *bool       `json:"externalOperator,omitempty"`
}

// ToPartialEvent converts the HTTP model into the domain update.
func (r *PartialEventRequest) ToPartialEvent() (domain.PartialEvent, error) {
	partial := domain.PartialEvent{
		ID:                   r.ID,
		SheetID:              r.SheetID,
		GID:                  r.GID,
		Name:                 r.Name,
		SortIndex:            r.SortIndex,
		Visible:              r.Visible,
		Beta:                 r.Beta,
		ShortDescription:     r.ShortDescription,
		Description:          r.Description,
		Image:                r.Image,
		Light:                r.Light,
		Dates:                r.Dates,
		CustomDate:           r.CustomDate,
		DurationInMinutes:    r.DurationInMinutes,
		MaxSubscribers:       r.MaxSubscribers,
		Subscribers:          r.Subscribers,
		CostMember:           r.CostMember,
		CostNonMember:        r.CostNonMember,
		WaitingList:          r.WaitingList,
		MaxWaitingList:       r.MaxWaitingList,
		Location:             r.Location,
		BookingTemplate:      r.BookingTemplate,
		WaitingTemplate:      r.WaitingTemplate,
		AltBookingButtonText: r.AltBookingButtonText,
		AltEmailAddress:      r.AltEmailAddress,
		ExternalOperator:     r.ExternalOperator,
	}
	if r.Type != nil {
		eventType := domain.EventType(*r.Type)
		if !eventType.Valid() {
			return domain.PartialEvent{}, fmt.Errorf("invalid event type %q", *r.Type)
		}
		partial.Type = &eventType
	}
	return partial, nil
}
