package models

import (
	"fmt"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

// FacilityResponse ответ с данными объекта каталога
type FacilityResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Note        *string `json:"note,omitempty"`
	Icon        string  `json:"icon"`
	Location    string  `json:"location"`

	OperatingHours OperatingHoursResponse `json:"operatingHours"`

	Capacity int `json:"maxCapacity"`
}

// OperatingHoursResponse рабочие часы объекта в презентационном виде
type OperatingHoursResponse struct {
	OpenHour  int    `json:"openHour"`
	CloseHour int    `json:"closeHour"`
	Display   string `json:"display"` // "09:00 - 17:00"
}

// FacilityListResponse ответ со списком объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	return &FacilityResponse{
		ID:          f.ID,
		Type:        string(f.Type),
		Name:        f.Name,
		Description: f.Description,
		Note:        f.Note,
		Icon:        f.Icon,
		Location:    f.Location,
		OperatingHours: OperatingHoursResponse{
			OpenHour:  f.OpenHour,
			CloseHour: f.CloseHour,
			Display:   fmt.Sprintf("%02d:00 - %02d:00", f.OpenHour, f.CloseHour),
		},
		Capacity: f.Capacity,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	if facilities == nil {
		return &FacilityListResponse{
			Facilities: []FacilityResponse{},
		}
	}

	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, len(facilities)),
	}

	for i, facility := range facilities {
		if facilityResp := FromDomainFacility(facility); facilityResp != nil {
			resp.Facilities[i] = *facilityResp
		}
	}

	return resp
}
