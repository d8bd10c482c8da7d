package update_event

import (
	"errors"
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	getEvents "github.com/sv-web/sve-backend/internal/api/handlers/get_events"
	eventsService "github.com/sv-web/sve-backend/internal/service/events"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgIncompleteEvent    = "incomplete event"
	msgMissingID          = "id is required"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/events/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PartialEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/update - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ID == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	partial, err := req.ToPartialEvent()
	if err != nil {
		h.logger.Warn("POST /events/update - Invalid event: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.Update(r.Context(), partial)
	if err != nil {
		if errors.Is(err, eventsService.ErrValidation) {
			h.logger.Warn("POST /events/update - Incomplete event %s: %v", req.ID, err)
			handlers.RespondBadRequest(w, msgIncompleteEvent)
			return
		}
		h.logger.Error("POST /events/update - Failed to update event %s: %v", req.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /events/update - Event %s updated", event.ID)
	handlers.RespondJSON(w, http.StatusOK, getEvents.FromDomain(event))
}
