package booking

import (
	"github.com/pradita-lab/Lab-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий работает одинаково поверх *sql.DB, *dbmetrics.DB
// и активной транзакции из контекста
type DBExecutor = dbmetrics.DBExecutor
