package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/littlelemon-chicago/booking-service/internal/api/handlers"
	"github.com/littlelemon-chicago/booking-service/internal/service/bookings"
	"github.com/littlelemon-chicago/booking-service/internal/service/bookings/models"
)

const (
	msgMissingDate = "query parameter 'date' is required"
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&include_inactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.GetDayBookingsRequest{
		Date:            date,
		IncludeInactive: query.Get("include_inactive") == "true",
	}

	result, err := h.service.GetDayBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /bookings - Failed for date=%s: %v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(date, result))
}
