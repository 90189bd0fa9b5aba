package get_available_times

import (
	"errors"
	"net/http"

	"github.com/littlelemon-chicago/booking-service/internal/api/handlers"
	getAvailableTimes "github.com/littlelemon-chicago/booking-service/internal/usecase/get_available_times"
)

const (
	msgMissingDate = "query parameter 'date' is required"
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /available-times - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{Date: date})
	if err != nil {
		if errors.Is(err, getAvailableTimes.ErrInvalidDate) {
			h.logger.Warn("GET /available-times - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /available-times - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
