package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	facilityRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/facility"
	"github.com/pradita-lab/Lab-BookingService/pkg/ptr"
)

// UseCase use case получения доступности объекта на дату
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%s, date=%s", req.FacilityID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект из каталога
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Генерируем полную сетку слотов из рабочих часов
	allSlots := domain.GenerateSlots(facility.OpenHour, facility.CloseHour)

	// 4. Получаем активные бронирования на эту дату
	activeBookings, err := uc.bookingRepo.GetByFacilityAndDate(
		ctx, req.FacilityID, req.Date,
		[]domain.BookingStatus{domain.StatusUpcoming},
	)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Строим занятость по слотам
	occupancy, err := buildSlotOccupancy(activeBookings)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slot occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot occupancy: %v", ErrInternal, err)
	}

	resp := &Response{
		FacilityID:     facility.ID,
		Date:           req.Date,
		AllSlots:       allSlots,
		BookedSlots:    bookedSlotUnion(occupancy),
		AvailableSlots: availableSlotsFor(allSlots, occupancy, facility.Capacity),
	}

	// 6. Для многоместных объектов дополнительно считаем свободные единицы
	if facility.IsPooled() {
		available := facility.Capacity - len(activeBookings)
		if available < 0 {
			available = 0
		}
		resp.AvailableCount = ptr.Ptr(available)
		resp.TotalCount = ptr.Ptr(facility.Capacity)
	}

	uc.logger.Info("GetAvailability: facility=%s, date=%s, booked=%d, available=%d",
		req.FacilityID, req.Date, len(resp.BookedSlots), len(resp.AvailableSlots))

	return resp, nil
}
