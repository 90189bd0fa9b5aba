package domain

import "strings"

// BookingDraft is the in-progress, not-yet-submitted form state.
// Fields may be transiently empty or invalid while the customer is editing;
// no invariant is enforced until a submission attempt.
type BookingDraft struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     string // YYYY-MM-DD
	BookingTime     string // HH:MM
	NumberOfGuests  int
	Occasion        string
	SpecialRequests string
}

// NewDraft returns a draft in its empty/default shape
func NewDraft() BookingDraft {
	return BookingDraft{NumberOfGuests: DefaultGuests}
}

// Normalize converts a draft into the record handed to the store:
// name/phone/occasion/special requests trimmed, email trimmed and lowercased.
// Date, time and guest count pass through unchanged.
func (d BookingDraft) Normalize() Booking {
	return Booking{
		CustomerName:    strings.TrimSpace(d.CustomerName),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(d.CustomerEmail)),
		CustomerPhone:   strings.TrimSpace(d.CustomerPhone),
		BookingDate:     d.BookingDate,
		BookingTime:     d.BookingTime,
		NumberOfGuests:  d.NumberOfGuests,
		Occasion:        strings.TrimSpace(d.Occasion),
		SpecialRequests: strings.TrimSpace(d.SpecialRequests),
		Status:          StatusConfirmed,
	}
}
