// Package validation contains the pure field and form checks for a booking
// submission. Nothing here touches the clock, the network or the database:
// the result is always a domain.ValidationErrors value.
package validation

import (
	"regexp"
	"strings"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// Validation messages shown next to the offending field
const (
	MsgNameRequired   = "Name is required"
	MsgNameTooShort   = "Name must be at least 2 characters"
	MsgEmailRequired  = "Email is required"
	MsgEmailInvalid   = "Please enter a valid email address"
	MsgPhoneRequired  = "Phone number is required"
	MsgPhoneInvalid   = "Please enter a valid phone number"
	MsgDateRequired   = "Date is required"
	MsgTimeRequired   = "Time is required"
	MsgGuestsRequired = "Number of guests is required"
	MsgGuestsTooMany  = "Maximum 10 guests allowed"
)

var (
	// Намеренно дешёвая проверка: локальная часть, @, домен с точкой.
	// Полное соответствие RFC 5322 не требуется.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Телефон: только цифры, пробелы, дефисы, плюсы и скобки
	phoneRegex    = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// ValidateEmail reports whether the string looks like an email address:
// a non-empty local part, "@", and a domain containing at least one dot
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone reports whether the string is an acceptable phone number:
// only digits/spaces/hyphens/pluses/parentheses, and at least 10 digits
// once everything else is stripped
func ValidatePhone(phone string) bool {
	if !phoneRegex.MatchString(phone) {
		return false
	}
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	return len(digits) >= 10
}

// ValidateBookingForm checks every required field of the draft and returns
// the accumulated error map. Each field is checked independently; errors do
// not short-circuit across fields. Occasion and special requests are always
// optional and never validated.
func ValidateBookingForm(draft domain.BookingDraft) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	name := strings.TrimSpace(draft.CustomerName)
	if name == "" {
		errs[domain.FieldCustomerName] = MsgNameRequired
	} else if len(name) < 2 {
		errs[domain.FieldCustomerName] = MsgNameTooShort
	}

	if strings.TrimSpace(draft.CustomerEmail) == "" {
		errs[domain.FieldCustomerEmail] = MsgEmailRequired
	} else if !ValidateEmail(draft.CustomerEmail) {
		errs[domain.FieldCustomerEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(draft.CustomerPhone) == "" {
		errs[domain.FieldCustomerPhone] = MsgPhoneRequired
	} else if !ValidatePhone(draft.CustomerPhone) {
		errs[domain.FieldCustomerPhone] = MsgPhoneInvalid
	}

	if draft.BookingDate == "" {
		errs[domain.FieldBookingDate] = MsgDateRequired
	}

	if draft.BookingTime == "" {
		errs[domain.FieldBookingTime] = MsgTimeRequired
	}

	if draft.NumberOfGuests < domain.MinGuests {
		errs[domain.FieldNumberOfGuests] = MsgGuestsRequired
	} else if draft.NumberOfGuests > domain.MaxGuests {
		errs[domain.FieldNumberOfGuests] = MsgGuestsTooMany
	}

	return errs
}
