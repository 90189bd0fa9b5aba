package get_booking

import (
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/service/bookings/models"
)

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

	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		CustomerName:       resp.CustomerName,
		CustomerEmail:      resp.CustomerEmail,
		CustomerPhone:      resp.CustomerPhone,
		BookingDate:        resp.BookingDate,
		BookingTime:        resp.BookingTime,
		NumberOfGuests:     resp.NumberOfGuests,
		Occasion:           resp.Occasion,
		SpecialRequests:    resp.SpecialRequests,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}
	return out
}
