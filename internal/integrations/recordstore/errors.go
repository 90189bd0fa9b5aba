package recordstore

import "errors"

var (
	// ErrInvalidBooking возвращается, когда хранилище отклонило запись
	// как невалидную (ответ 422)
	ErrInvalidBooking = errors.New("recordstore client: booking rejected as invalid")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("recordstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("recordstore client: invalid response")
)
