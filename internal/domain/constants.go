package domain

// CanonicalSlots фиксированный список времён, доступных для бронирования в течение дня.
// Порядок важен: слоты всегда отдаются по возрастанию.
var CanonicalSlots = []string{
	"17:00",
	"18:00",
	"19:00",
	"20:00",
	"21:00",
	"22:00",
}

// Guest count bounds for a single reservation
const (
	MinGuests     = 1
	MaxGuests     = 10
	DefaultGuests = 2
)

// AdvanceBookingMonths how far ahead the date picker opens (calendar months, not days)
const AdvanceBookingMonths = 3

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Field names used as keys in ValidationErrors.
// Совпадают со snake_case именами полей формы и колонок в БД.
const (
	FieldCustomerName   = "customer_name"
	FieldCustomerEmail  = "customer_email"
	FieldCustomerPhone  = "customer_phone"
	FieldBookingDate    = "booking_date"
	FieldBookingTime    = "booking_time"
	FieldNumberOfGuests = "number_of_guests"
)

// InactiveStatuses список статусов неактивных бронирований.
// Используется при фильтрации расписания на день.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
