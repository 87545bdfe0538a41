package create_booking

import (
	"fmt"
	"time"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.FacilityID == "" {
		return fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if len(req.TimeSlots) == 0 {
		return fmt.Errorf("%w: at least one time slot is required", ErrInvalidInput)
	}

	seen := make(map[types.TimeString]struct{}, len(req.TimeSlots))
	for _, slot := range req.TimeSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, string(slot))
		}
		if _, ok := seen[slot]; ok {
			return fmt.Errorf("%w: duplicate time slot %q", ErrInvalidInput, string(slot))
		}
		seen[slot] = struct{}{}
	}

	if req.Options != nil && len(*req.Options) > domain.MaxOptionsLength {
		return fmt.Errorf("%w: options too long (max %d characters)", ErrInvalidInput, domain.MaxOptionsLength)
	}

	return nil
}

// validateSlotsWithinHours проверяет, что каждый запрошенный слот попадает
// в рабочую сетку объекта. Последний рабочий слот - closeHour включительно
func validateSlotsWithinHours(slots []types.TimeString, facility *domain.Facility) error {
	for _, slot := range slots {
		hour, err := slot.Hour()
		if err != nil {
			return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, string(slot))
		}
		if hour < facility.OpenHour || hour > facility.CloseHour {
			return fmt.Errorf("%w: slot %s is outside operating hours (%02d:00-%02d:00)",
				ErrInvalidInput, string(slot), facility.OpenHour, facility.CloseHour)
		}
	}
	return nil
}
