package recordstore

import "github.com/littlelemon-chicago/booking-service/internal/domain"

// bookingPayload тело запроса на вставку записи о бронировании.
// Идентификатор и временные метки назначает хранилище.
type bookingPayload struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	BookingDate     string `json:"booking_date"`
	BookingTime     string `json:"booking_time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	Occasion        string `json:"occasion,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func toPayload(b domain.Booking) bookingPayload {
	return bookingPayload{
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		NumberOfGuests:  b.NumberOfGuests,
		Occasion:        b.Occasion,
		SpecialRequests: b.SpecialRequests,
	}
}

// ErrorResponse модель ошибки от хранилища
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
