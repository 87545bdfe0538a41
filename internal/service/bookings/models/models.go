package models

import (
	"errors"
	"strings"
	"time"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"` // одиночный статус или список через запятую
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	FacilityID    string `json:"facilityId"`
	Date          string `json:"date"`      // "2026-03-15"
	StartTime     string `json:"startTime"` // "14:00"
	EndTime       string `json:"endTime"`   // "16:00"
	DurationHours int    `json:"duration"`
	Status        string `json:"status"`

	// Денормализованные данные объекта
	FacilityName string `json:"facilityName"`
	FacilityType string `json:"facilityType"`
	Location     string `json:"location"`

	Options *string `json:"options,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

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
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatuses парсит фильтр статусов: одиночное значение или
// список через запятую ("upcoming,completed"). Пустые элементы игнорируются
func ToDomainBookingStatuses(raw string) ([]domain.BookingStatus, error) {
	parts := strings.Split(raw, ",")
	statuses := make([]domain.BookingStatus, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		status, err := toDomainBookingStatus(part)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func toDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
