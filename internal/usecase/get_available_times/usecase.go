package get_available_times

import (
	"context"
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/availability"
	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// UseCase use case для получения доступных времён бронирования
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает доступные времена на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableTimes: invalid date %q: %v", req.Date, err)
		return nil, ErrInvalidDate
	}

	now := uc.timeProvider.Now()
	times := availability.AvailableTimes(date, now)

	uc.logger.Info("GetAvailableTimes: %d slot(s) available on %s", len(times), req.Date)

	return &Response{
		Date:  req.Date,
		Times: times,
	}, nil
}

// BookingWindow возвращает границы выбора даты для date-picker'а
func (uc *UseCase) BookingWindow(ctx context.Context) *WindowResponse {
	now := uc.timeProvider.Now()
	return &WindowResponse{
		MinDate: availability.TodayDate(now),
		MaxDate: availability.MaxDate(now),
	}
}
