package domain

import (
	"time"

	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusUpcoming is the only status that occupies slots/units
	StatusUpcoming BookingStatus = "upcoming"
	// StatusCompleted is terminal; the transition is driven externally
	// once the booked date/time has passed, never by this service
	StatusCompleted BookingStatus = "completed"
	// StatusCancelled is terminal; set by the cancel operation
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a facility booking in the system
type Booking struct {
	ID         string
	UserID     string
	FacilityID string

	// Date is an opaque "YYYY-MM-DD" key, compared by string equality.
	// The whole system assumes a single local operating timezone
	Date          string
	StartTime     types.TimeString
	EndTime       types.TimeString // exclusive
	DurationHours int

	Status BookingStatus

	// Denormalized facility data for history views
	FacilityName string
	FacilityType FacilityType
	Location     string

	// Options free-form annotation, e.g. accessory selection
	Options *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status == StatusUpcoming
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUpcoming
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
