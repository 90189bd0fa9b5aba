package models

import (
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// BookingResponse представление бронирования для staff-операций
type BookingResponse struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     string
	BookingTime     string
	NumberOfGuests  int
	Occasion        string
	SpecialRequests string
	Status          string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// GetDayBookingsRequest запрос расписания на день
type GetDayBookingsRequest struct {
	Date            string // YYYY-MM-DD
	IncludeInactive bool   // включать ли отменённые и no-show
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		BookingDate:        b.BookingDate,
		BookingTime:        b.BookingTime,
		NumberOfGuests:     b.NumberOfGuests,
		Occasion:           b.Occasion,
		SpecialRequests:    b.SpecialRequests,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
