package create_booking

import (
	"errors"
	"net/http"

	"github.com/littlelemon-chicago/booking-service/internal/api/handlers"
	"github.com/littlelemon-chicago/booking-service/internal/domain"
	createBooking "github.com/littlelemon-chicago/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgDateOutOfWindow    = "booking date must be between today and three months from today"
	msgTimeNotAvailable   = "the selected time is not available for this date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		var validationErr *createBooking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %d field error(s)", len(validationErr.Fields))
			handlers.RespondUnprocessable(w, domain.MsgFixErrors, validationErr.Fields)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateOutOfWindow):
			h.logger.Warn("POST /bookings - Date out of window: %s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, createBooking.ErrTimeNotAvailable):
			h.logger.Warn("POST /bookings - Time not available: %s %s", req.BookingDate, req.BookingTime)
			handlers.RespondConflict(w, msgTimeNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
