package create_booking

import (
	"time"

	createBooking "github.com/pradita-lab/Lab-BookingService/internal/usecase/create_booking"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID string   `json:"facilityId"`
	Date       string   `json:"date"`      // "2026-03-15"
	TimeSlots  []string `json:"timeSlots"` // ["14:00", "15:00"]
	Options    *string  `json:"options,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	FacilityID    string  `json:"facilityId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"duration"`
	Status        string  `json:"status"`
	FacilityName  string  `json:"facilityName"`
	FacilityType  string  `json:"facilityType"`
	Location      string  `json:"location"`
	Options       *string `json:"options,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	slots := make([]types.TimeString, 0, len(r.TimeSlots))
	for _, raw := range r.TimeSlots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return &createBooking.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		Date:       r.Date,
		TimeSlots:  slots,
		Options:    r.Options,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		FacilityID:    b.FacilityID,
		Date:          b.Date,
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		DurationHours: b.DurationHours,
		Status:        string(b.Status),
		FacilityName:  b.FacilityName,
		FacilityType:  string(b.FacilityType),
		Location:      b.Location,
		Options:       b.Options,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
