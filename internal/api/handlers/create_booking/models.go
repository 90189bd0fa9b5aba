package create_booking

import (
	"time"

	createBooking "github.com/littlelemon-chicago/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Имена полей совпадают с полями формы бронирования.
type CreateBookingRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	BookingDate     string `json:"booking_date"` // "2025-12-31"
	BookingTime     string `json:"booking_time"` // "19:00"
	NumberOfGuests  int    `json:"number_of_guests"`
	Occasion        string `json:"occasion,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	BookingDate     string `json:"booking_date"`
	BookingTime     string `json:"booking_time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	Occasion        string `json:"occasion,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	Message         string `json:"message"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		BookingDate:     r.BookingDate,
		BookingTime:     r.BookingTime,
		NumberOfGuests:  r.NumberOfGuests,
		Occasion:        r.Occasion,
		SpecialRequests: r.SpecialRequests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		BookingDate:     resp.BookingDate,
		BookingTime:     resp.BookingTime,
		NumberOfGuests:  resp.NumberOfGuests,
		Occasion:        resp.Occasion,
		SpecialRequests: resp.SpecialRequests,
		Status:          resp.Status,
		Message:         resp.Message,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
