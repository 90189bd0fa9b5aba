package booking

import "github.com/littlelemon-chicago/booking-service/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics.
// Репозиторий работает и с *sql.DB, и с обёрткой метрик.
type DBExecutor = dbmetrics.DBExecutor
