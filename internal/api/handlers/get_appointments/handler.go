package get_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	calendarService "github.com/sv-web/sve-backend/internal/service/calendar"
)

const (
	msgInvalidQuery     = "invalid query parameter"
	msgCalendarNotFound = "calendar not found"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/calendar/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	maxResults := 0
	if raw := query.Get("maxResults"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /calendar/appointments - Invalid maxResults %q", raw)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		maxResults = parsed
	}

	appointments, err := h.service.Appointments(r.Context(), query.Get("calendarId"), maxResults)
	if err != nil {
		if errors.Is(err, calendarService.ErrUnknownCalendar) {
			h.logger.Warn("GET /calendar/appointments - Unknown calendar: %v", err)
			handlers.RespondNotFound(w, msgCalendarNotFound)
			return
		}
		h.logger.Error("GET /calendar/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appointments)
}
