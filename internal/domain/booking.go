package domain

import "time"

// BookingStatus represents the status of a table reservation
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a confirmed table reservation in the system.
// ID, CreatedAt and UpdatedAt are assigned by the store, never by callers.
type Booking struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     string // YYYY-MM-DD
	BookingTime     string // HH:MM
	NumberOfGuests  int
	Occasion        string
	SpecialRequests string
	Status          BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled or marked no-show
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}
