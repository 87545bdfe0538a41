package get_availability

import (
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// Request модель запроса доступности объекта на дату
type Request struct {
	FacilityID string // ID объекта
	Date       string // Дата в формате YYYY-MM-DD
}

// Response модель ответа с доступностью по слотам
//
// Для объектов с capacity == 1 доступность бинарная: AvailableSlots -
// это AllSlots за вычетом BookedSlots, счётчики не заполняются.
// Для объектов с capacity > 1 слот доступен, пока число активных
// бронирований в нём меньше capacity; дополнительно заполняются
// AvailableCount/TotalCount (свободные/всего единиц на дату).
// UI ветвится на этом двойном представлении - сохраняем оба
type Response struct {
	FacilityID string
	Date       string

	AllSlots       []types.TimeString // полная сетка рабочих часов
	BookedSlots    []types.TimeString // объединение занятых слотов (set union)
	AvailableSlots []types.TimeString

	AvailableCount *int // только для capacity > 1
	TotalCount     *int // только для capacity > 1
}
