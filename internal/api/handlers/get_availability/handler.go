package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradita-lab/Lab-BookingService/internal/api/handlers"
	getAvailability "github.com/pradita-lab/Lab-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidInput     = "некорректные параметры запроса"
	msgFacilityNotFound = "объект не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{id}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["id"]
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		FacilityID: facilityID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/availability - Facility not found: id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/availability - Invalid input: id=%s, date=%s", facilityID, date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /facilities/{id}/availability - Failed: id=%s, date=%s, error=%v",
				facilityID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/availability - OK: id=%s, date=%s", facilityID, date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
