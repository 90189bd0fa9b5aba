package create_booking

import (
	"errors"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

var (
	// ErrInvalidDate возвращается при нечитаемом формате даты бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateOutOfWindow возвращается, когда дата вне окна [сегодня, +3 месяца]
	ErrDateOutOfWindow = errors.New("create_booking: date is outside the booking window")

	// ErrTimeNotAvailable возвращается, когда время не входит в список
	// доступных слотов на выбранную дату
	ErrTimeNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError несёт карту ошибок валидации формы по полям.
// Это данные, а не исключение: обработчик превращает её в ответ 422.
type ValidationError struct {
	Fields domain.ValidationErrors
}

// Error реализует error
func (e *ValidationError) Error() string {
	return "create_booking: booking form validation failed"
}
