package form

import (
	"context"
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// BookingStore интерфейс внешнего хранилища записей о бронированиях.
// Контроллер формы передаёт туда нормализованную запись и ничего не знает
// о транспорте или схеме хранения.
type BookingStore interface {
	Insert(ctx context.Context, booking domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
