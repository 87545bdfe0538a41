package create_booking

import (
	"errors"
	"fmt"

	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotsNotConsecutive возвращается, когда запрошенные слоты не идут подряд
	ErrSlotsNotConsecutive = errors.New("time slots must be consecutive")

	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrDailyLimitExceeded возвращается при превышении дневного лимита бронирований
	ErrDailyLimitExceeded = errors.New("daily booking limit exceeded")

	// ErrSlotConflict возвращается, когда запрошенные слоты уже заняты
	ErrSlotConflict = errors.New("time slots already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// SlotConflictError детализирует конфликт: какие именно слоты заняты.
// Совместима с errors.Is(err, ErrSlotConflict)
type SlotConflictError struct {
	Slots []types.TimeString
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("time slots already booked: %v", e.Slots)
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}
