package check_daily_limit

import (
	"errors"
	"net/http"

	"github.com/pradita-lab/Lab-BookingService/internal/api/handlers"
	"github.com/pradita-lab/Lab-BookingService/internal/api/middleware"
	checkDailyLimit "github.com/pradita-lab/Lab-BookingService/internal/usecase/check_daily_limit"
)

const (
	msgInvalidInput = "некорректные параметры запроса"
	msgUnauthorized = "требуется аутентификация"
)

// CheckLimitResponse HTTP response model
type CheckLimitResponse struct {
	CanBook bool    `json:"canBook"`
	Reason  *string `json:"reason,omitempty"`
}

type Handler struct {
	useCase CheckDailyLimitUseCase
	logger  Logger
}

func NewHandler(useCase CheckDailyLimitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/check-limit?facilityId=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/check-limit - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	result, err := h.useCase.Execute(r.Context(), &checkDailyLimit.Request{
		UserID:     userID,
		FacilityID: query.Get("facilityId"),
		Date:       query.Get("date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, checkDailyLimit.ErrInvalidInput):
			h.logger.Warn("GET /bookings/check-limit - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/check-limit - Failed for user=%s: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/check-limit - user=%s, canBook=%t", userID, result.CanBook)
	handlers.RespondJSON(w, http.StatusOK, &CheckLimitResponse{
		CanBook: result.CanBook,
		Reason:  result.Reason,
	})
}
