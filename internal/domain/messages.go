package domain

import "fmt"

// User-facing submission messages. The store failure message is deliberately
// generic: the underlying error is logged, never shown to the customer.
const (
	MsgFixErrors    = "Please fix the errors in the form"
	MsgStoreFailure = "Unable to complete your booking. Please try again or contact us directly."
)

// ConfirmationMessage renders the success message for a stored booking.
// Email здесь всегда нормализованный (обрезанный и в нижнем регистре).
func ConfirmationMessage(email string) string {
	return fmt.Sprintf("Booking confirmed! A confirmation email will be sent to %s", email)
}
