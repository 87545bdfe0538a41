package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	facilityRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/facility"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка лимита, проверка конфликтов и вставка выполняются в одной
// serializable транзакции: между перепроверкой и записью другой запрос
// не может занять те же слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, facility=%s, date=%s, slots=%v",
		req.UserID, req.FacilityID, req.Date, req.TimeSlots)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Сортируем слоты и проверяем непрерывность
	sortedSlots := domain.SortSlots(req.TimeSlots)
	if !domain.IsContiguous(sortedSlots) {
		uc.logger.Warn("CreateBooking: slots not consecutive: %v", sortedSlots)
		return nil, ErrSlotsNotConsecutive
	}

	// 3. Получаем объект из каталога
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 4. Слоты должны попадать в рабочие часы объекта
	if err := validateSlotsWithinHours(sortedSlots, facility); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Выводим интервал бронирования из слотов
	startTime, endTime, duration, err := domain.DeriveRange(sortedSlots)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to derive range: %v", err)
		return nil, fmt.Errorf("%w: failed to derive booking range: %v", ErrInternal, err)
	}

	var created *domain.Booking

	// 6. Критическая секция: лимит + конфликты + вставка атомарно
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Дневной лимит пользователя
		// Ошибки репозитория оборачиваем вторым %w: txmanager должен
		// видеть *pq.Error, чтобы повторить транзакцию при 40001
		count, err := uc.bookingRepo.CountByUserAndDate(txCtx, req.UserID, req.Date, domain.StatusUpcoming)
		if err != nil {
			return fmt.Errorf("%w: failed to count user bookings: %w", ErrInternal, err)
		}
		if count >= domain.MaxBookingsPerDay {
			return ErrDailyLimitExceeded
		}

		// 6.2. Перепроверка конфликтов под блокировкой
		activeBookings, err := uc.bookingRepo.GetByFacilityAndDate(
			txCtx, req.FacilityID, req.Date,
			[]domain.BookingStatus{domain.StatusUpcoming},
		)
		if err != nil {
			return fmt.Errorf("%w: failed to get active bookings: %w", ErrInternal, err)
		}

		conflicts, err := conflictingSlots(sortedSlots, activeBookings, facility.Capacity)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot conflicts: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			return &SlotConflictError{Slots: conflicts}
		}

		// 6.3. Вставка
		booking := &domain.Booking{
			UserID:        req.UserID,
			FacilityID:    facility.ID,
			Date:          req.Date,
			StartTime:     startTime,
			EndTime:       endTime,
			DurationHours: duration,
			Status:        domain.StatusUpcoming,
			FacilityName:  facility.Name,
			FacilityType:  facility.Type,
			Location:      facility.Location,
			Options:       req.Options,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		var conflictErr *SlotConflictError
		switch {
		case errors.Is(txErr, ErrDailyLimitExceeded):
			uc.logger.Warn("CreateBooking: daily limit exceeded for user=%s, date=%s", req.UserID, req.Date)
		case errors.As(txErr, &conflictErr):
			uc.logger.Warn("CreateBooking: slot conflict for facility=%s, date=%s: %v",
				req.FacilityID, req.Date, conflictErr.Slots)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("CreateBooking: created booking id=%s, facility=%s, date=%s, %s-%s",
		created.ID, created.FacilityID, created.Date, created.StartTime, created.EndTime)

	return &Response{Booking: created}, nil
}

// conflictingSlots возвращает запрошенные слоты, которые уже заняты до
// предела вместимости. Для capacity == 1 любой занятый слот - конфликт
func conflictingSlots(requested []types.TimeString, bookings []*domain.Booking, capacity int) ([]types.TimeString, error) {
	occupancy := make(map[types.TimeString]int)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		occupied, err := domain.OccupiedSlots(b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}
		for _, slot := range occupied {
			occupancy[slot]++
		}
	}

	var conflicts []types.TimeString
	for _, slot := range requested {
		if occupancy[slot] >= capacity {
			conflicts = append(conflicts, slot)
		}
	}
	return conflicts, nil
}
