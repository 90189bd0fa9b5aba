package get_booking_window

import (
	"net/http"

	"github.com/littlelemon-chicago/booking-service/internal/api/handlers"
)

type Handler struct {
	useCase BookingWindowUseCase
	logger  Logger
}

func NewHandler(useCase BookingWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window := h.useCase.BookingWindow(r.Context())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(window))
}
