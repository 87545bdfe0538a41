package facilities

import (
	"context"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// FacilityRepository интерфейс каталога объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
