package domain

// FacilityType represents the kind of bookable facility
type FacilityType string

const (
	TypeSoldering     FacilityType = "soldering"
	TypeDevelopmentPC FacilityType = "development-pc"
	TypeVRHeadset     FacilityType = "vr-headset"
)

// Facility represents a bookable lab facility
// The catalog is administrative data: read-only at runtime
type Facility struct {
	ID          string
	Type        FacilityType
	Name        string
	Description string
	Note        *string
	Icon        string
	Location    string

	// Operating hours as an inclusive hourly grid:
	// OpenHour=9, CloseHour=17 produces slots 09:00..17:00
	OpenHour  int
	CloseHour int

	// Capacity is the number of units available in parallel.
	// 1 for exclusive resources (soldering, VR), N for pooled ones (dev PCs)
	Capacity int
}

// IsPooled returns true if the facility has more than one bookable unit
func (f *Facility) IsPooled() bool {
	return f.Capacity > 1
}
