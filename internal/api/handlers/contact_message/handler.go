package contact_message

import (
	"errors"
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	contactService "github.com/sv-web/sve-backend/internal/service/contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMessage     = "invalid message"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/contact/message
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact/message - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	message, err := req.ToContactMessage()
	if err != nil {
		h.logger.Warn("POST /contact/message - Invalid message: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessage)
		return
	}

	if err := h.service.Message(r.Context(), message); err != nil {
		if errors.Is(err, contactService.ErrValidation) {
			h.logger.Warn("POST /contact/message - Invalid message: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMessage)
			return
		}
		h.logger.Error("POST /contact/message - Failed to relay message: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
