package recordstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() domain.Booking {
	return domain.Booking{
		CustomerName:   "Maria Lopez",
		CustomerEmail:  "maria@example.com",
		CustomerPhone:  "(312) 555-0142",
		BookingDate:    "2025-12-20",
		BookingTime:    "19:00",
		NumberOfGuests: 4,
		Status:         domain.StatusConfirmed,
	}
}

func TestInsert_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload bookingPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", 5*time.Second, nopLogger{})

	err := client.Insert(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/bookings", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "maria@example.com", gotPayload.CustomerEmail)
	assert.Equal(t, "19:00", gotPayload.BookingTime)
}

func TestInsert_NoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second, nopLogger{})

	assert.NoError(t, client.Insert(context.Background(), testBooking()))
}

func TestInsert_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Message: "Please fix the errors in the form",
			Errors:  map[string]string{"customer_email": "Please enter a valid email address"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", 5*time.Second, nopLogger{})

	err := client.Insert(context.Background(), testBooking())

	require.ErrorIs(t, err, ErrInvalidBooking)
	assert.Contains(t, err.Error(), "Please fix the errors in the form")
}

func TestInsert_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key", 5*time.Second, nopLogger{})

	err := client.Insert(context.Background(), testBooking())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestInsert_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже остановлен

	client := NewClient(srv.URL, "secret-key", 1*time.Second, nopLogger{})

	err := client.Insert(context.Background(), testBooking())

	assert.ErrorIs(t, err, ErrInternal)
}
