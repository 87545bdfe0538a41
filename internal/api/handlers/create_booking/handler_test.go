package create_booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradita-lab/Lab-BookingService/internal/api/middleware"
	"github.com/pradita-lab/Lab-BookingService/internal/infra/storage/memstore"
	createBookingUC "github.com/pradita-lab/Lab-BookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := memstore.NewStore()
	memstore.SeedFacilities(store)

	uc := createBookingUC.NewUseCase(store, store.Facilities(), memstore.NewTxManager(), nopLogger{})
	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(nopLogger{}))
	protected.HandleFunc("/bookings", handler.Handle).Methods(http.MethodPost)
	return r
}

func postBooking(t *testing.T, r *mux.Router, userID string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestHandler_Handle(t *testing.T) {
	validBody := map[string]interface{}{
		"facilityId": "vr-1",
		"date":       "2026-03-15",
		"timeSlots":  []string{"14:00", "15:00"},
	}

	t.Run("creates booking and wraps it in success envelope", func(t *testing.T) {
		r := newTestRouter(t)

		rec := postBooking(t, r, "user-1", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, true, envelope["success"])

		data := envelope["data"].(map[string]interface{})
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "14:00", data["startTime"])
		assert.Equal(t, "16:00", data["endTime"])
		assert.Equal(t, float64(2), data["duration"])
		assert.Equal(t, "upcoming", data["status"])
	})

	t.Run("missing user header yields 401", func(t *testing.T) {
		r := newTestRouter(t)

		rec := postBooking(t, r, "", validBody)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("conflicting slots yield 409 naming the busy slots", func(t *testing.T) {
		r := newTestRouter(t)

		require.Equal(t, http.StatusCreated, postBooking(t, r, "user-1", validBody).Code)

		// Пересекается только слот 15:00 - он и должен попасть в сообщение
		rec := postBooking(t, r, "user-2", map[string]interface{}{
			"facilityId": "vr-1",
			"date":       "2026-03-15",
			"timeSlots":  []string{"15:00", "16:00"},
		})

		require.Equal(t, http.StatusConflict, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, false, envelope["success"])

		errBody := envelope["error"].(map[string]interface{})
		message := errBody["message"].(string)
		assert.Contains(t, message, "15:00")
		assert.NotContains(t, message, "16:00")
	})

	t.Run("gap in slots yields 400", func(t *testing.T) {
		r := newTestRouter(t)

		rec := postBooking(t, r, "user-1", map[string]interface{}{
			"facilityId": "vr-1",
			"date":       "2026-03-15",
			"timeSlots":  []string{"09:00", "11:00"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown facility yields 404", func(t *testing.T) {
		r := newTestRouter(t)

		rec := postBooking(t, r, "user-1", map[string]interface{}{
			"facilityId": "laser-cutter-1",
			"date":       "2026-03-15",
			"timeSlots":  []string{"14:00"},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed slot format yields 400", func(t *testing.T) {
		r := newTestRouter(t)

		rec := postBooking(t, r, "user-1", map[string]interface{}{
			"facilityId": "vr-1",
			"date":       "2026-03-15",
			"timeSlots":  []string{"2pm"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
