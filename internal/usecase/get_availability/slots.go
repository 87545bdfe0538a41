package get_availability

import (
	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// buildSlotOccupancy строит карту занятости: сколько активных бронирований
// занимает каждый слот. Неактивные бронирования не учитываются
func buildSlotOccupancy(bookings []*domain.Booking) (map[types.TimeString]int, error) {
	occupancy := make(map[types.TimeString]int)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		occupied, err := domain.OccupiedSlots(b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}

		for _, slot := range occupied {
			occupancy[slot]++
		}
	}

	return occupancy, nil
}

// bookedSlotUnion возвращает отсортированное объединение занятых слотов
// Дубликаты схлопываются: это set union, а не multiset
func bookedSlotUnion(occupancy map[types.TimeString]int) []types.TimeString {
	slots := make([]types.TimeString, 0, len(occupancy))
	for slot := range occupancy {
		slots = append(slots, slot)
	}
	return domain.SortSlots(slots)
}

// availableSlotsFor вычисляет доступные слоты с учётом вместимости:
// слот доступен, пока занят меньшим числом бронирований, чем capacity.
// Для capacity == 1 это эквивалентно разности AllSlots - BookedSlots
func availableSlotsFor(allSlots []types.TimeString, occupancy map[types.TimeString]int, capacity int) []types.TimeString {
	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if occupancy[slot] < capacity {
			available = append(available, slot)
		}
	}
	return available
}
