package unsubscribe_news

import (
	"errors"
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	subscribeNews "github.com/sv-web/sve-backend/internal/api/handlers/subscribe_news"
	newsService "github.com/sv-web/sve-backend/internal/service/news"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "invalid subscription"
)

type Handler struct {
	service NewsService
	logger  Logger
}

func NewHandler(service NewsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/news/unsubscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req subscribeNews.SubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /news/unsubscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	subscription, err := req.ToSubscription()
	if err != nil {
		h.logger.Warn("POST /news/unsubscribe - Invalid subscription: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), subscription); err != nil {
		if errors.Is(err, newsService.ErrValidation) {
			h.logger.Warn("POST /news/unsubscribe - Invalid subscription: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("POST /news/unsubscribe - Unsubscribe failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
