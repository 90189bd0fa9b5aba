package create_booking

import (
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// Request модель запроса на создание бронирования.
// Поля намеренно повторяют черновик формы: запрос проходит ровно ту же
// валидацию и нормализацию, что и интерактивная форма.
type Request struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     string // YYYY-MM-DD
	BookingTime     string // HH:MM
	NumberOfGuests  int
	Occasion        string
	SpecialRequests string
}

// ToDraft конвертирует запрос в черновик формы
func (r *Request) ToDraft() domain.BookingDraft {
	return domain.BookingDraft{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		BookingDate:     r.BookingDate,
		BookingTime:     r.BookingTime,
		NumberOfGuests:  r.NumberOfGuests,
		Occasion:        r.Occasion,
		SpecialRequests: r.SpecialRequests,
	}
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     string
	BookingTime     string
	NumberOfGuests  int
	Occasion        string
	SpecialRequests string
	Status          string
	Message         string // подтверждение для клиента
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
