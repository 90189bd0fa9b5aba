package get_booking_window

import (
	getAvailableTimes "github.com/littlelemon-chicago/booking-service/internal/usecase/get_available_times"
)

// BookingWindowResponse границы выбора даты для клиентского date-picker'а
type BookingWindowResponse struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

func FromUseCaseResponse(resp *getAvailableTimes.WindowResponse) *BookingWindowResponse {
	return &BookingWindowResponse{
		MinDate: resp.MinDate,
		MaxDate: resp.MaxDate,
	}
}
