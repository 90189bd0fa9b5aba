package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/littlelemon-chicago/booking-service/internal/api/handlers"
)

// StaffKeyHeader заголовок с ключом доступа к staff-эндпоинтам
const StaffKeyHeader = "X-Staff-Key"

// StaffAuth возвращает middleware, проверяющий ключ доступа персонала.
// Публичные маршруты (создание бронирования, доступные времена) через
// этот middleware не проходят.
func StaffAuth(staffKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(StaffKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(staffKey)) != 1 {
				handlers.RespondUnauthorized(w, "missing or invalid staff key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
