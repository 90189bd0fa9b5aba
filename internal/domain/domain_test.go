package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDraft(t *testing.T) {
	draft := NewDraft()

	assert.Equal(t, DefaultGuests, draft.NumberOfGuests)
	assert.Empty(t, draft.CustomerName)
	assert.Empty(t, draft.BookingDate)
}

func TestNormalize(t *testing.T) {
	draft := BookingDraft{
		CustomerName:    "  Maria Lopez  ",
		CustomerEmail:   " Maria@Example.COM ",
		CustomerPhone:   " (312) 555-0142 ",
		BookingDate:     "2025-12-20",
		BookingTime:     "19:00",
		NumberOfGuests:  4,
		Occasion:        " anniversary ",
		SpecialRequests: " window table ",
	}

	record := draft.Normalize()

	assert.Equal(t, "Maria Lopez", record.CustomerName)
	assert.Equal(t, "maria@example.com", record.CustomerEmail)
	assert.Equal(t, "(312) 555-0142", record.CustomerPhone)
	// Дата, время и число гостей проходят без изменений
	assert.Equal(t, "2025-12-20", record.BookingDate)
	assert.Equal(t, "19:00", record.BookingTime)
	assert.Equal(t, 4, record.NumberOfGuests)
	assert.Equal(t, "anniversary", record.Occasion)
	assert.Equal(t, "window table", record.SpecialRequests)
	assert.Equal(t, StatusConfirmed, record.Status)
}

func TestValidationErrors_IsValid(t *testing.T) {
	assert.True(t, ValidationErrors{}.IsValid())
	assert.False(t, ValidationErrors{FieldCustomerName: "Name is required"}.IsValid())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	cases := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tc := range cases {
		b := Booking{Status: tc.status}
		assert.Equal(t, tc.want, b.CanBeCancelled(), "status=%s", tc.status)
	}
}

func TestConfirmationMessage(t *testing.T) {
	assert.Equal(t,
		"Booking confirmed! A confirmation email will be sent to maria@example.com",
		ConfirmationMessage("maria@example.com"))
}
