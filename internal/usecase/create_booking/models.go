package create_booking

import (
	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// Request модель запроса создания бронирования
type Request struct {
	UserID     string             // ID пользователя (из контекста аутентификации)
	FacilityID string             // ID объекта
	Date       string             // Дата в формате YYYY-MM-DD
	TimeSlots  []types.TimeString // Запрошенные слоты, порядок произвольный
	Options    *string            // Дополнительные пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
