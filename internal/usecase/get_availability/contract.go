package get_availability

import (
	"context"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByFacilityAndDate получает бронирования объекта на конкретную дату
	GetByFacilityAndDate(ctx context.Context, facilityID, date string, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс каталога объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
