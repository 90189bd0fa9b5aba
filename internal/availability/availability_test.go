package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlelemon-chicago/booking-service/internal/domain"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestAvailableTimes_FutureDate(t *testing.T) {
	now := date(2025, time.December, 15, 20, 30)
	futureDay := date(2025, time.December, 20, 0, 0)

	times := AvailableTimes(futureDay, now)

	require.Len(t, times, 6)
	assert.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"}, times)
}

func TestAvailableTimes_PastDate(t *testing.T) {
	// Прошедшие даты отсекает не калькулятор, а проверка окна бронирования
	now := date(2025, time.December, 15, 12, 0)
	pastDay := date(2025, time.December, 1, 0, 0)

	times := AvailableTimes(pastDay, now)

	assert.Len(t, times, 6)
}

func TestAvailableTimes_TodayMorning(t *testing.T) {
	now := date(2025, time.December, 15, 9, 0)
	today := date(2025, time.December, 15, 0, 0)

	times := AvailableTimes(today, now)

	// До полудня открыты все вечерние слоты
	assert.Len(t, times, 6)
}

func TestAvailableTimes_TodayCutoff(t *testing.T) {
	today := date(2025, time.December, 15, 0, 0)

	// 16:00 — отсечка 17, слот 17:00 уже закрыт, 18:00 открыт
	times := AvailableTimes(today, date(2025, time.December, 15, 16, 0))
	assert.Equal(t, []string{"18:00", "19:00", "20:00", "21:00", "22:00"}, times)

	// Минуты игнорируются: в 16:59 отсечка та же
	times = AvailableTimes(today, date(2025, time.December, 15, 16, 59))
	assert.Equal(t, []string{"18:00", "19:00", "20:00", "21:00", "22:00"}, times)

	// 18:00 — закрыты 17:00, 18:00 и 19:00
	times = AvailableTimes(today, date(2025, time.December, 15, 18, 0))
	assert.Equal(t, []string{"20:00", "21:00", "22:00"}, times)

	// 21:00 — остался только последний слот
	times = AvailableTimes(today, date(2025, time.December, 15, 21, 0))
	assert.Equal(t, []string{"22:00"}, times)

	// 22:00 и позже — пустой список, но не nil-паника
	times = AvailableTimes(today, date(2025, time.December, 15, 22, 0))
	assert.Empty(t, times)
}

func TestAvailableTimes_ReturnsCopy(t *testing.T) {
	now := date(2025, time.December, 15, 12, 0)
	futureDay := date(2025, time.December, 20, 0, 0)

	times := AvailableTimes(futureDay, now)
	times[0] = "09:00"

	assert.Equal(t, "17:00", domain.CanonicalSlots[0])
}

func TestContains(t *testing.T) {
	times := []string{"18:00", "19:00"}

	assert.True(t, Contains(times, "19:00"))
	assert.False(t, Contains(times, "17:00"))
	assert.False(t, Contains(nil, "17:00"))
}

func TestTodayDate(t *testing.T) {
	assert.Equal(t, "2025-12-15", TodayDate(date(2025, time.December, 15, 23, 59)))
}

func TestMaxDate(t *testing.T) {
	// Ровно три календарных месяца вперёд
	assert.Equal(t, "2026-03-15", MaxDate(date(2025, time.December, 15, 10, 0)))

	// Переполнение дня месяца нормализуется по правилам календаря
	assert.Equal(t, "2026-03-02", MaxDate(date(2025, time.November, 30, 10, 0)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-01-02", FormatDate(date(2026, time.January, 2, 8, 30)))
}
