package get_subscriptions

import (
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
)

type Handler struct {
	service NewsService
	logger  Logger
}

func NewHandler(service NewsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/news/subscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptions, err := h.service.Subscriptions(r.Context())
	if err != nil {
		h.logger.Error("GET /news/subscriptions - Failed to list subscriptions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, subscriptions)
}
