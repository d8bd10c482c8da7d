package get_event_counters

import (
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/events/counter
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	counters, err := h.service.Counters(r.Context())
	if err != nil {
		h.logger.Error("GET /events/counter - Failed to load counters: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, counters)
}
