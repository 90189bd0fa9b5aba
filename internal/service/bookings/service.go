package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
	bookingRepo "github.com/littlelemon-chicago/booking-service/internal/infra/storage/booking"
	"github.com/littlelemon-chicago/booking-service/internal/service/bookings/models"
)

// Service сервис staff-операций над бронированиями:
// просмотр и отмена. Создание бронирований живёт в usecase/create_booking.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetDayBookings получает расписание на день, отсортированное по времени
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDayBookings: fetching bookings for date=%s, includeInactive=%t",
		req.Date, req.IncludeInactive)

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		s.logger.Warn("GetDayBookings: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByDate(ctx, req.Date, req.IncludeInactive)
	if err != nil {
		s.logger.Error("GetDayBookings: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetDayBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayBookings: fetched %d booking(s) for date=%s", len(bookings), req.Date)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование с указанием причины.
// Отменить можно только подтверждённое бронирование.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
