package get_day_bookings

import (
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/service/bookings/models"
)

// BookingItem элемент списка бронирований на день
type BookingItem struct {
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
	CreatedAt       string `json:"created_at"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Date     string        `json:"date"`
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(date string, resp *models.BookingListResponse) *BookingListResponse {
	items := make([]BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		items[i] = BookingItem{
			ID:              b.ID,
			CustomerName:    b.CustomerName,
			CustomerEmail:   b.CustomerEmail,
			CustomerPhone:   b.CustomerPhone,
			BookingDate:     b.BookingDate,
			BookingTime:     b.BookingTime,
			NumberOfGuests:  b.NumberOfGuests,
			Occasion:        b.Occasion,
			SpecialRequests: b.SpecialRequests,
			Status:          b.Status,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{
		Date:     date,
		Bookings: items,
		Total:    resp.Total,
	}
}
