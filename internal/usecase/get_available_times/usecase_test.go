package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_FutureDate(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 12, 15, 20, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-12-20"})

	require.NoError(t, err)
	assert.Equal(t, "2025-12-20", resp.Date)
	assert.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"}, resp.Times)
}

func TestExecute_TodayEvening(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 12, 15, 19, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-12-15"})

	require.NoError(t, err)
	assert.Equal(t, []string{"21:00", "22:00"}, resp.Times)
}

func TestExecute_TodayClosed(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 12, 15, 22, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-12-15"})

	require.NoError(t, err)
	assert.Empty(t, resp.Times)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{Date: "15.12.2025"})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBookingWindow(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC))

	window := uc.BookingWindow(context.Background())

	assert.Equal(t, "2025-12-15", window.MinDate)
	assert.Equal(t, "2026-03-15", window.MaxDate)
}
