package check_daily_limit

import (
	"context"
	"fmt"
	"time"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/pkg/ptr"
)

// UseCase use case предварительной проверки дневного лимита бронирований
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку: может ли пользователь бронировать на эту дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckDailyLimit: user=%s, facility=%s, date=%s", req.UserID, req.FacilityID, req.Date)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDailyLimit: validation failed: %v", err)
		return nil, err
	}

	count, err := uc.bookingRepo.CountByUserAndDate(ctx, req.UserID, req.Date, domain.StatusUpcoming)
	if err != nil {
		uc.logger.Error("CheckDailyLimit: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	if count >= domain.MaxBookingsPerDay {
		return &Response{
			CanBook: false,
			Reason:  ptr.Ptr(fmt.Sprintf("Maximum %d bookings per day allowed", domain.MaxBookingsPerDay)),
		}, nil
	}

	return &Response{CanBook: true}, nil
}

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

	return nil
}
