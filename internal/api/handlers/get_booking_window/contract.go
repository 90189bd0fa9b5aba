package get_booking_window

import (
	"context"

	getAvailableTimes "github.com/littlelemon-chicago/booking-service/internal/usecase/get_available_times"
)

type BookingWindowUseCase interface {
	BookingWindow(ctx context.Context) *getAvailableTimes.WindowResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
