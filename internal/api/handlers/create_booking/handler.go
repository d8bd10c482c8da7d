package create_booking

import (
	"errors"
	"net/http"

	"github.com/sv-web/sve-backend/internal/api/handlers"
	"github.com/sv-web/sve-backend/internal/domain"
	bookEvent "github.com/sv-web/sve-backend/internal/usecase/book_event"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase BookEventUseCase
	logger  Logger
}

func NewHandler(useCase BookEventUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/events/booking
//
// The response is always a BookingResponse: the website shows its message
// to the visitor, so internal failures surface as success=false with a
// generic text instead of a 5xx.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	response, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, bookEvent.ErrValidation) {
			h.logger.Warn("POST /events/booking - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /events/booking - Booking failed: event=%s, error=%v", req.EventID, err)
		handlers.RespondJSON(w, http.StatusOK, domain.FailureResponse(bookEvent.MessageGenericFailure))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
