package memstore

import (
	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/pkg/ptr"
)

// SeedFacilities заполняет каталог стандартным набором лабораторных
// объектов. Тот же набор сидируется миграцией для Postgres
func SeedFacilities(s *Store) {
	s.AddFacility(&domain.Facility{
		ID:          "soldering-1",
		Type:        domain.TypeSoldering,
		Name:        "Soldering Station",
		Description: "Professional soldering station with fume extractor",
		Note:        ptr.Ptr("Safety goggles required"),
		Icon:        "soldering-iron",
		Location:    "Lab Room A",
		OpenHour:    domain.DefaultOpenHour,
		CloseHour:   domain.DefaultCloseHour,
		Capacity:    1,
	})

	s.AddFacility(&domain.Facility{
		ID:          "dev-pc-1",
		Type:        domain.TypeDevelopmentPC,
		Name:        "Development PC",
		Description: "High-performance workstation for software development",
		Icon:        "desktop",
		Location:    "Lab Room B",
		OpenHour:    domain.DefaultOpenHour,
		CloseHour:   domain.DefaultCloseHour,
		Capacity:    3,
	})

	s.AddFacility(&domain.Facility{
		ID:          "vr-1",
		Type:        domain.TypeVRHeadset,
		Name:        "VR Headset",
		Description: "Virtual reality headset with motion controllers",
		Note:        ptr.Ptr("Clean lenses after use"),
		Icon:        "vr-headset",
		Location:    "Lab Room C",
		OpenHour:    domain.DefaultOpenHour,
		CloseHour:   domain.DefaultCloseHour,
		Capacity:    1,
	})
}
