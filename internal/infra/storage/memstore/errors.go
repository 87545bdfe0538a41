package memstore

import (
	bookingRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/booking"
	facilityRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/facility"
)

// Ошибки совпадают с sentinel-ошибками SQL-репозиториев, чтобы
// errors.Is в сервисах и usecase работал с любым бэкендом хранилища
var (
	ErrBookingNotFound  = bookingRepo.ErrBookingNotFound
	ErrInvalidBooking   = bookingRepo.ErrInvalidBooking
	ErrFacilityNotFound = facilityRepo.ErrFacilityNotFound
)
