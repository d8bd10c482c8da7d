package prebook_event

import (
	"io"
	"net/http"
	"strings"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	"github.com/sv-web/sve-backend/internal/domain"
	bookEvent "github.com/sv-web/sve-backend/internal/usecase/book_event"
)

// maxTokenSize bounds the request body, tokens are a few hundred bytes.
const maxTokenSize = 4096

type Handler struct {
	useCase PrebookEventUseCase
	logger  Logger
}

func NewHandler(useCase PrebookEventUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/events/prebooking
//
// The body is the plain base64 token from the booking link. Like the
// booking endpoint this always answers with a BookingResponse; a broken
// or expired link is a message for the visitor, not a 5xx.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxTokenSize))
	if err != nil {
		h.logger.Warn("POST /events/prebooking - Failed to read request body: %v", err)
		handlers.RespondJSON(w, http.StatusOK, domain.FailureResponse(bookEvent.MessageGenericFailure))
		return
	}
	token := strings.TrimSpace(string(body))

	response, err := h.useCase.Execute(r.Context(), token)
	if err != nil {
		h.logger.Error("POST /events/prebooking - Prebooking failed: %v", err)
		handlers.RespondJSON(w, http.StatusOK, domain.FailureResponse(bookEvent.MessageGenericFailure))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
