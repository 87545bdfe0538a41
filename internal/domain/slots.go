package domain

import (
	"fmt"
	"sort"

	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// Слотовая арифметика: чистые функции без побочных эффектов.
// Слот - это час в сетке рабочих часов объекта, представленный как "HH:00".
// Слоты не хранятся в БД, это проекция на момент запроса.

// GenerateSlots генерирует сетку слотов от openHour до closeHour включительно
// GenerateSlots(9, 17) -> ["09:00" .. "17:00"], 9 слотов
func GenerateSlots(openHour, closeHour int) []types.TimeString {
	if closeHour < openHour {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, closeHour-openHour+1)
	for hour := openHour; hour <= closeHour; hour++ {
		slots = append(slots, types.FromHour(hour))
	}
	return slots
}

// OccupiedSlots возвращает слоты, занятые интервалом [start, end)
// OccupiedSlots("14:00", "16:00") -> ["14:00", "15:00"]
func OccupiedSlots(start, end types.TimeString) ([]types.TimeString, error) {
	startHour, err := start.Hour()
	if err != nil {
		return nil, fmt.Errorf("occupied slots: %w", err)
	}

	endHour, err := end.Hour()
	if err != nil {
		return nil, fmt.Errorf("occupied slots: %w", err)
	}

	slots := make([]types.TimeString, 0)
	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, types.FromHour(hour))
	}
	return slots, nil
}

// SortSlots возвращает отсортированную копию списка слотов
// Лексикографическая сортировка корректна для формата "HH:00"
func SortSlots(slots []types.TimeString) []types.TimeString {
	sorted := make([]types.TimeString, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].IsBefore(sorted[j])
	})
	return sorted
}

// IsContiguous проверяет, что отсортированные слоты идут подряд без пропусков
// Пустой список и одиночный слот считаются непрерывными
func IsContiguous(sortedSlots []types.TimeString) bool {
	for i := 1; i < len(sortedSlots); i++ {
		prevHour, err := sortedSlots[i-1].Hour()
		if err != nil {
			return false
		}
		currHour, err := sortedSlots[i].Hour()
		if err != nil {
			return false
		}
		if currHour != prevHour+1 {
			return false
		}
	}
	return true
}

// DeriveRange вычисляет (startTime, endTime, duration) из непрерывного
// отсортированного набора слотов: начало - первый слот, конец - час после
// последнего, длительность - количество слотов.
// Непрерывность должна быть проверена вызывающей стороной через IsContiguous
func DeriveRange(sortedSlots []types.TimeString) (types.TimeString, types.TimeString, int, error) {
	if len(sortedSlots) == 0 {
		return "", "", 0, fmt.Errorf("derive range: empty slot set")
	}

	start := sortedSlots[0]
	end, err := sortedSlots[len(sortedSlots)-1].AddHours(1)
	if err != nil {
		return "", "", 0, fmt.Errorf("derive range: %w", err)
	}

	return start, end, len(sortedSlots), nil
}
