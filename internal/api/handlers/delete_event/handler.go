package delete_event

import (
	"errors"
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	eventsService "github.com/sv-web/sve-backend/internal/service/events"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingID          = "id is required"
	msgEventNotFound      = "event not found"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// DeleteRequest identifies the event to delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// Handle POST /api/v1/events/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/delete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ID == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, eventsService.ErrEventNotFound) {
			h.logger.Warn("POST /events/delete - Event %s not found", req.ID)
			handlers.RespondNotFound(w, msgEventNotFound)
			return
		}
		h.logger.Error("POST /events/delete - Failed to delete event %s: %v", req.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /events/delete - Event %s deleted", req.ID)
	w.WriteHeader(http.StatusNoContent)
}
