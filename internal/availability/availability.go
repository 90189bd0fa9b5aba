// Package availability computes which of the canonical dinner slots remain
// bookable for a given date. The current time is always passed in explicitly
// so the functions stay pure and testable.
package availability

import (
	"strconv"
	"time"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

// AvailableTimes returns the canonical slots still bookable on the given date,
// in ascending order.
//
// Любая дата, кроме сегодняшней (в том числе прошедшая), получает полный
// список: границы выбора даты — ответственность date-picker'а, не калькулятора.
// Для сегодняшней даты остаются только слоты, начинающиеся больше чем через
// час, с огрублением до целого часа: слот проходит, если его час строго
// больше now.Hour()+1. Минуты игнорируются сознательно — в 17:59 слот 19:00
// уже недоступен. Результат может быть пустым.
func AvailableTimes(date time.Time, now time.Time) []string {
	if !isSameDay(date, now) {
		times := make([]string, len(domain.CanonicalSlots))
		copy(times, domain.CanonicalSlots)
		return times
	}

	cutoff := now.Hour() + 1
	times := make([]string, 0, len(domain.CanonicalSlots))
	for _, slot := range domain.CanonicalSlots {
		if slotHour(slot) > cutoff {
			times = append(times, slot)
		}
	}
	return times
}

// Contains reports whether the slot is in the list returned by AvailableTimes
func Contains(times []string, slot string) bool {
	for _, t := range times {
		if t == slot {
			return true
		}
	}
	return false
}

// TodayDate returns the minimum selectable date for the date picker
func TodayDate(now time.Time) string {
	return FormatDate(now)
}

// MaxDate returns the maximum selectable date: exactly three calendar months
// ahead, with day-of-month overflow normalized by the standard calendar rules
func MaxDate(now time.Time) string {
	return FormatDate(now.AddDate(0, domain.AdvanceBookingMonths, 0))
}

// FormatDate renders a date in the canonical YYYY-MM-DD form (UTC)
func FormatDate(t time.Time) string {
	return t.UTC().Format(domain.DateFormat)
}

// slotHour извлекает час из канонического слота "HH:MM"
func slotHour(slot string) int {
	h, err := strconv.Atoi(slot[:2])
	if err != nil {
		return -1
	}
	return h
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
