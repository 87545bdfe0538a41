package create_booking

import (
	"context"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает новое бронирование
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetByFacilityAndDate получает бронирования объекта на конкретную дату.
	// Внутри транзакции блокирует строки (FOR UPDATE)
	GetByFacilityAndDate(ctx context.Context, facilityID, date string, statuses []domain.BookingStatus) ([]*domain.Booking, error)

	// CountByUserAndDate считает бронирования пользователя на дату в заданном статусе
	CountByUserAndDate(ctx context.Context, userID, date string, status domain.BookingStatus) (int, error)
}

// FacilityRepository интерфейс каталога объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	// DoSerializable выполняет функцию в serializable транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
