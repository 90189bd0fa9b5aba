// Package form implements the booking form controller: a single-owner state
// machine over the draft, its validation errors and the submission status.
// It is meant to be driven synchronously by an interactive surface (kiosk,
// TUI, another service) calling SetField and Submit; all availability and
// validation logic is delegated to the leaf packages.
//
// A Controller is not safe for concurrent use. The expected model is one
// controller per session on a single goroutine with at most one in-flight
// Submit, guarded by the IsSubmitting flag.
package form

import (
	"context"
	"strconv"
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/availability"
	"github.com/littlelemon-chicago/booking-service/internal/domain"
	"github.com/littlelemon-chicago/booking-service/internal/validation"
)

// SubmissionStatus is the outcome of the most recent submit attempt
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// Controller owns the mutable draft/errors/status triple and drives the
// submission state machine
type Controller struct {
	store        BookingStore
	timeProvider TimeProvider
	logger       Logger

	draft          domain.BookingDraft
	errors         domain.ValidationErrors
	availableTimes []string
	submitting     bool
	status         SubmissionStatus
	message        string
}

// NewController создает новый контроллер с пустой формой
func NewController(store BookingStore, logger Logger) *Controller {
	return &Controller{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		draft:        domain.NewDraft(),
		errors:       domain.ValidationErrors{},
		status:       StatusIdle,
	}
}

// Draft returns the current form state
func (c *Controller) Draft() domain.BookingDraft {
	return c.draft
}

// Errors returns the current per-field validation errors
func (c *Controller) Errors() domain.ValidationErrors {
	return c.errors
}

// AvailableTimes returns the slots selectable for the currently chosen date
func (c *Controller) AvailableTimes() []string {
	return c.availableTimes
}

// Status returns the outcome of the last submit attempt
func (c *Controller) Status() SubmissionStatus {
	return c.status
}

// Message returns the human-readable message for the current status
func (c *Controller) Message() string {
	return c.message
}

// IsSubmitting reports whether a submit is in flight. The surface is expected
// to disable its submit trigger while this is true.
func (c *Controller) IsSubmitting() bool {
	return c.submitting
}

// SetField updates a single draft field in response to user input and clears
// that field's validation error, if any. Editing a field never resets the
// submission status; that happens only at the start of the next submit.
//
// number_of_guests парсится как целое, нечисловой ввод превращается в 0.
// Смена booking_date пересчитывает доступные слоты и сбрасывает выбранное
// время, если оно выпало из нового списка.
func (c *Controller) SetField(field, value string) {
	switch field {
	case domain.FieldCustomerName:
		c.draft.CustomerName = value
	case domain.FieldCustomerEmail:
		c.draft.CustomerEmail = value
	case domain.FieldCustomerPhone:
		c.draft.CustomerPhone = value
	case domain.FieldBookingDate:
		c.draft.BookingDate = value
		c.refreshAvailableTimes()
	case domain.FieldBookingTime:
		c.draft.BookingTime = value
	case domain.FieldNumberOfGuests:
		n, err := strconv.Atoi(value)
		if err != nil {
			n = 0
		}
		c.draft.NumberOfGuests = n
	case "occasion":
		c.draft.Occasion = value
	case "special_requests":
		c.draft.SpecialRequests = value
	default:
		c.logger.Warn("SetField: unknown field %q ignored", field)
		return
	}

	delete(c.errors, field)
}

// Submit runs full validation and, if the draft is clean, hands the
// normalized record to the store. Exactly one of three stable states results:
// error with field messages (no store call), success with the draft reset,
// or error with a generic message when the store call fails.
func (c *Controller) Submit(ctx context.Context) {
	errs := validation.ValidateBookingForm(c.draft)
	if !errs.IsValid() {
		c.errors = errs
		c.status = StatusError
		c.message = domain.MsgFixErrors
		return
	}

	// Статус и сообщение сбрасываются только здесь, в начале попытки
	c.submitting = true
	c.status = StatusIdle
	c.message = ""
	defer func() {
		c.submitting = false
	}()

	record := c.draft.Normalize()

	if err := c.store.Insert(ctx, record); err != nil {
		// Деталь ошибки хранилища пользователю не показывается
		c.logger.Error("Submit: store insert failed: %v", err)
		c.status = StatusError
		c.message = domain.MsgStoreFailure
		return
	}

	c.logger.Info("Submit: booking stored for %s on %s %s",
		record.CustomerEmail, record.BookingDate, record.BookingTime)

	c.status = StatusSuccess
	c.message = domain.ConfirmationMessage(record.CustomerEmail)
	c.draft = domain.NewDraft()
	c.errors = domain.ValidationErrors{}
}

// refreshAvailableTimes recomputes the slot list for the selected date and
// invalidates a time selection that fell outside the new set
func (c *Controller) refreshAvailableTimes() {
	if c.draft.BookingDate == "" {
		c.availableTimes = nil
		c.draft.BookingTime = ""
		return
	}

	date, err := time.Parse(domain.DateFormat, c.draft.BookingDate)
	if err != nil {
		c.logger.Warn("refreshAvailableTimes: unparsable date %q", c.draft.BookingDate)
		c.availableTimes = nil
		c.draft.BookingTime = ""
		return
	}

	c.availableTimes = availability.AvailableTimes(date, c.timeProvider.Now())

	if c.draft.BookingTime != "" && !availability.Contains(c.availableTimes, c.draft.BookingTime) {
		c.draft.BookingTime = ""
	}
}
