package get_events

import (
	"net/http"
	"strconv"

	"github.com/sv-web/sve-backend/internal/api/handlers"
)

const msgInvalidQuery = "invalid query parameter"

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/events?all=&beta=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	all := false
	if value := query.Get("all"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		all = parsed
	}

	var beta *bool
	if value := query.Get("beta"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		beta = &parsed
	}

	events, err := h.service.List(r.Context(), all, beta)
	if err != nil {
		h.logger.Error("GET /events - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]EventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, FromDomain(event))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
