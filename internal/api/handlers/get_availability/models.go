package get_availability

import (
	getAvailability "github.com/pradita-lab/Lab-BookingService/internal/usecase/get_availability"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID     string   `json:"facilityId"`
	Date           string   `json:"date"`
	AllSlots       []string `json:"allSlots"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`

	// Заполняются только для объектов с несколькими единицами
	AvailableCount *int `json:"availableCount,omitempty"`
	TotalCount     *int `json:"totalCount,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		FacilityID:     resp.FacilityID,
		Date:           resp.Date,
		AllSlots:       slotsToStrings(resp.AllSlots),
		BookedSlots:    slotsToStrings(resp.BookedSlots),
		AvailableSlots: slotsToStrings(resp.AvailableSlots),
		AvailableCount: resp.AvailableCount,
		TotalCount:     resp.TotalCount,
	}
}

func slotsToStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.String()
	}
	return out
}
