package create_booking

import (
	"context"
	"fmt"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
	"github.com/littlelemon-chicago/booking-service/internal/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s, guests=%d",
		req.CustomerEmail, req.BookingDate, req.BookingTime, req.NumberOfGuests)

	draft := req.ToDraft()

	// 1. Полная валидация формы. Ошибки накапливаются по полям и
	// возвращаются как данные; до хранилища дело не доходит.
	if errs := validation.ValidateBookingForm(draft); !errs.IsValid() {
		uc.logger.Warn("CreateBooking: validation failed, %d field error(s)", len(errs))
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Серверное соблюдение границ date-picker'а
	if err := validateBookingWindow(req.BookingDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s rejected: %v", req.BookingDate, err)
		return nil, err
	}

	// 4. Время должно входить в доступные слоты на эту дату
	if err := validateTimeAvailable(req.BookingDate, req.BookingTime, now); err != nil {
		uc.logger.Warn("CreateBooking: time %s on %s rejected: %v", req.BookingTime, req.BookingDate, err)
		return nil, err
	}

	// 5. Нормализуем черновик и сохраняем запись
	record := draft.Normalize()

	created, err := uc.bookingRepo.Create(ctx, &record)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:              created.ID,
		CustomerName:    created.CustomerName,
		CustomerEmail:   created.CustomerEmail,
		CustomerPhone:   created.CustomerPhone,
		BookingDate:     created.BookingDate,
		BookingTime:     created.BookingTime,
		NumberOfGuests:  created.NumberOfGuests,
		Occasion:        created.Occasion,
		SpecialRequests: created.SpecialRequests,
		Status:          string(created.Status),
		Message:         domain.ConfirmationMessage(created.CustomerEmail),
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
