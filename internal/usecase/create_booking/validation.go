package create_booking

import (
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/availability"
	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// validateBookingWindow проверяет, что дата попадает в окно выбора
// [сегодня, сегодня + 3 календарных месяца]. Это серверная сторона
// ограничений date-picker'а: сам движок валидации формы границы дат
// сознательно не проверяет.
//
// Канонический формат YYYY-MM-DD сравнивается лексикографически.
func validateBookingWindow(dateStr string, now time.Time) error {
	if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
		return ErrInvalidDate
	}

	if dateStr < availability.TodayDate(now) || dateStr > availability.MaxDate(now) {
		return ErrDateOutOfWindow
	}

	return nil
}

// validateTimeAvailable проверяет, что выбранное время входит в список
// доступных слотов на выбранную дату. Неканоническое время ("17:30")
// отсекается этой же проверкой.
func validateTimeAvailable(dateStr, timeStr string, now time.Time) error {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return ErrInvalidDate
	}

	times := availability.AvailableTimes(date, now)
	if !availability.Contains(times, timeStr) {
		return ErrTimeNotAvailable
	}

	return nil
}
