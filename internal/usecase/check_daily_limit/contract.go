package check_daily_limit

import (
	"context"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountByUserAndDate считает бронирования пользователя на дату в заданном статусе
	CountByUserAndDate(ctx context.Context, userID, date string, status domain.BookingStatus) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
