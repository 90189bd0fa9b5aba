// Package recordstore contains the HTTP client for the external booking
// record store. It implements form.BookingStore, so an interactive surface
// can drive the form controller against any deployment of the store.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с хранилищем записей о бронированиях
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL string, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Insert отправляет нормализованную запись о бронировании в хранилище
func (c *Client) Insert(ctx context.Context, booking domain.Booking) error {
	url := fmt.Sprintf("%s/api/v1/bookings", c.baseURL)

	body, err := json.Marshal(toPayload(booking))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal booking: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		c.log.Info("Insert: booking record stored for %s on %s %s",
			booking.CustomerEmail, booking.BookingDate, booking.BookingTime)
		return nil
	case http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return fmt.Errorf("%w: failed to decode error response: %v", ErrInvalidResponse, err)
		}
		c.log.Warn("Insert: booking rejected: %s", errResp.Message)
		return fmt.Errorf("%w: %s", ErrInvalidBooking, errResp.Message)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
