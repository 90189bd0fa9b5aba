package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		CustomerName:   "Maria Lopez",
		CustomerEmail:  "maria@example.com",
		CustomerPhone:  "(312) 555-0142",
		BookingDate:    "2025-12-31",
		BookingTime:    "19:00",
		NumberOfGuests: 2,
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.uk",
		"a@b.cd",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"user@nodot",
		"user @example.com",
		"user@exa mple.com",
		"@example.com",
		"user@",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"3125550142",
		"(312) 555-0142",
		"+1 312 555 0142",
		"312-555-0142",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"312555",            // меньше 10 цифр
		"(312) 555-014",     // 9 цифр при допустимых символах
		"312555O142x",       // посторонние символы
		"call me: 31255501", // буквы запрещены независимо от числа цифр
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to be invalid", phone)
	}
}

func TestValidateBookingForm_ValidDraft(t *testing.T) {
	errs := ValidateBookingForm(validDraft())

	require.Empty(t, errs)
	assert.True(t, errs.IsValid())
}

func TestValidateBookingForm_EmptyDraft(t *testing.T) {
	errs := ValidateBookingForm(domain.BookingDraft{})

	require.Len(t, errs, 6)
	assert.Equal(t, MsgNameRequired, errs[domain.FieldCustomerName])
	assert.Equal(t, MsgEmailRequired, errs[domain.FieldCustomerEmail])
	assert.Equal(t, MsgPhoneRequired, errs[domain.FieldCustomerPhone])
	assert.Equal(t, MsgDateRequired, errs[domain.FieldBookingDate])
	assert.Equal(t, MsgTimeRequired, errs[domain.FieldBookingTime])
	assert.Equal(t, MsgGuestsRequired, errs[domain.FieldNumberOfGuests])
}

func TestValidateBookingForm_NameRules(t *testing.T) {
	draft := validDraft()

	draft.CustomerName = "   "
	errs := ValidateBookingForm(draft)
	assert.Equal(t, MsgNameRequired, errs[domain.FieldCustomerName])

	draft.CustomerName = "A"
	errs = ValidateBookingForm(draft)
	assert.Equal(t, MsgNameTooShort, errs[domain.FieldCustomerName])

	// Пробелы вокруг не спасают однобуквенное имя
	draft.CustomerName = " A "
	errs = ValidateBookingForm(draft)
	assert.Equal(t, MsgNameTooShort, errs[domain.FieldCustomerName])

	draft.CustomerName = "Al"
	errs = ValidateBookingForm(draft)
	assert.NotContains(t, errs, domain.FieldCustomerName)
}

func TestValidateBookingForm_EmailRules(t *testing.T) {
	draft := validDraft()

	draft.CustomerEmail = ""
	errs := ValidateBookingForm(draft)
	assert.Equal(t, MsgEmailRequired, errs[domain.FieldCustomerEmail])

	draft.CustomerEmail = "not-an-email"
	errs = ValidateBookingForm(draft)
	assert.Equal(t, MsgEmailInvalid, errs[domain.FieldCustomerEmail])
}

func TestValidateBookingForm_PhoneRules(t *testing.T) {
	draft := validDraft()

	draft.CustomerPhone = ""
	errs := ValidateBookingForm(draft)
	assert.Equal(t, MsgPhoneRequired, errs[domain.FieldCustomerPhone])

	draft.CustomerPhone = "555-0142"
	errs = ValidateBookingForm(draft)
	assert.Equal(t, MsgPhoneInvalid, errs[domain.FieldCustomerPhone])
}

func TestValidateBookingForm_GuestsRules(t *testing.T) {
	draft := validDraft()

	draft.NumberOfGuests = 0
	errs := ValidateBookingForm(draft)
	assert.Equal(t, MsgGuestsRequired, errs[domain.FieldNumberOfGuests])

	draft.NumberOfGuests = -3
	errs = ValidateBookingForm(draft)
	assert.Equal(t, MsgGuestsRequired, errs[domain.FieldNumberOfGuests])

	draft.NumberOfGuests = 15
	errs = ValidateBookingForm(draft)
	assert.Equal(t, MsgGuestsTooMany, errs[domain.FieldNumberOfGuests])

	draft.NumberOfGuests = 10
	errs = ValidateBookingForm(draft)
	assert.NotContains(t, errs, domain.FieldNumberOfGuests)

	draft.NumberOfGuests = 1
	errs = ValidateBookingForm(draft)
	assert.NotContains(t, errs, domain.FieldNumberOfGuests)
}

func TestValidateBookingForm_ErrorsAccumulate(t *testing.T) {
	draft := validDraft()
	draft.CustomerEmail = "bad"
	draft.CustomerPhone = "123"
	draft.BookingTime = ""

	errs := ValidateBookingForm(draft)

	require.Len(t, errs, 3)
	assert.Equal(t, MsgEmailInvalid, errs[domain.FieldCustomerEmail])
	assert.Equal(t, MsgPhoneInvalid, errs[domain.FieldCustomerPhone])
	assert.Equal(t, MsgTimeRequired, errs[domain.FieldBookingTime])
	assert.False(t, errs.IsValid())
}
