package create_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pradita-lab/Lab-BookingService/internal/api/handlers"
	"github.com/pradita-lab/Lab-BookingService/internal/api/middleware"
	createBooking "github.com/pradita-lab/Lab-BookingService/internal/usecase/create_booking"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTimeSlot     = "некорректный формат слота, ожидается HH:MM"
	msgInvalidInput        = "некорректные данные бронирования"
	msgSlotsNotConsecutive = "слоты должны идти подряд без пропусков"
	msgFacilityNotFound    = "объект не найден"
	msgDailyLimitExceeded  = "превышен дневной лимит бронирований"
	msgSlotConflict        = "выбранные слоты уже заняты"
	msgUnauthorized        = "требуется аутентификация"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом слотов)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time slots: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *createBooking.SlotConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot conflict: user=%s, facility=%s, date=%s, slots=%v",
				userID, req.FacilityID, req.Date, conflictErr.Slots)
			handlers.RespondConflict(w, conflictMessage(conflictErr.Slots))

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user=%s, facility=%s, date=%s",
				userID, req.FacilityID, req.Date)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrDailyLimitExceeded):
			h.logger.Warn("POST /bookings - Daily limit exceeded: user=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDailyLimitExceeded)

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility=%s", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrSlotsNotConsecutive):
			h.logger.Warn("POST /bookings - Slots not consecutive: user=%s, slots=%v", userID, req.TimeSlots)
			handlers.RespondBadRequest(w, msgSlotsNotConsecutive)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, facility=%s, error=%v",
				userID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user=%s, facility=%s",
		result.Booking.ID, userID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// conflictMessage перечисляет занятые слоты в сообщении об ошибке,
// чтобы клиент видел, какие именно слоты выбрать заново
func conflictMessage(slots []types.TimeString) string {
	if len(slots) == 0 {
		return msgSlotConflict
	}
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = slot.String()
	}
	return fmt.Sprintf("%s: %s", msgSlotConflict, strings.Join(parts, ", "))
}
