package get_facility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradita-lab/Lab-BookingService/internal/api/handlers"
	"github.com/pradita-lab/Lab-BookingService/internal/service/facilities"
)

const (
	msgFacilityNotFound = "объект не найден"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["id"]

	facility, err := h.service.GetByID(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id} - Facility not found: id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id} - Invalid input: id=%s", facilityID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /facilities/{id} - Failed to get facility id=%s: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id} - Facility fetched: id=%s", facilityID)
	handlers.RespondJSON(w, http.StatusOK, facility)
}
