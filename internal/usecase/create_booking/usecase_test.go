package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
	"github.com/littlelemon-chicago/booking-service/internal/validation"
)

type mockBookingRepo struct {
	created *domain.Booking
	err     error
	calls   int
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := *booking
	out.ID = 42
	out.CreatedAt = time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	m.created = &out
	return &out, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *mockBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerName:   "Maria Lopez",
		CustomerEmail:  "maria@example.com",
		CustomerPhone:  "(312) 555-0142",
		BookingDate:    "2025-12-20",
		BookingTime:    "19:00",
		NumberOfGuests: 4,
	}
}

var testNow = time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t,
		"Booking confirmed! A confirmation email will be sent to maria@example.com",
		resp.Message)
}

func TestExecute_NormalizesInput(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	req := validRequest()
	req.CustomerName = "  Maria Lopez  "
	req.CustomerEmail = "  Maria@Example.COM "
	req.CustomerPhone = " (312) 555-0142 "

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Maria Lopez", repo.created.CustomerName)
	assert.Equal(t, "maria@example.com", repo.created.CustomerEmail)
	assert.Equal(t, "(312) 555-0142", repo.created.CustomerPhone)
	// Подтверждение строится по нормализованному email
	assert.Contains(t, resp.Message, "maria@example.com")
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	req := validRequest()
	req.CustomerEmail = "bad"
	req.NumberOfGuests = 15

	_, err := uc.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, validation.MsgEmailInvalid, validationErr.Fields[domain.FieldCustomerEmail])
	assert.Equal(t, validation.MsgGuestsTooMany, validationErr.Fields[domain.FieldNumberOfGuests])
	// До репозитория дело не доходит
	assert.Zero(t, repo.calls)
}

func TestExecute_DateInPast(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	req := validRequest()
	req.BookingDate = "2025-12-14"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateOutOfWindow)
	assert.Zero(t, repo.calls)
}

func TestExecute_DateBeyondWindow(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	req := validRequest()
	req.BookingDate = "2026-03-16" // окно закрывается 2026-03-15

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestExecute_WindowBoundaries(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	// Сегодня — нижняя граница окна, слоты ещё открыты в полдень
	req := validRequest()
	req.BookingDate = "2025-12-15"
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// Последний день окна
	req = validRequest()
	req.BookingDate = "2026-03-15"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TimeNotAvailable(t *testing.T) {
	repo := &mockBookingRepo{}
	// В 18:00 слот 19:00 на сегодня уже закрыт
	uc := newTestUseCase(repo, time.Date(2025, 12, 15, 18, 0, 0, 0, time.UTC))

	req := validRequest()
	req.BookingDate = "2025-12-15"
	req.BookingTime = "19:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTimeNotAvailable)
	assert.Zero(t, repo.calls)
}

func TestExecute_NonCanonicalTime(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, testNow)

	req := validRequest()
	req.BookingTime = "17:30"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTimeNotAvailable)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
