package check_daily_limit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/internal/infra/storage/memstore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func addBooking(t *testing.T, store *memstore.Store, userID, date string, status domain.BookingStatus) {
	t.Helper()

	_, err := store.Create(context.Background(), &domain.Booking{
		UserID:        userID,
		FacilityID:    "soldering-1",
		Date:          date,
		StartTime:     "09:00",
		EndTime:       "10:00",
		DurationHours: 1,
		Status:        status,
	})
	require.NoError(t, err)
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("user below limit can book", func(t *testing.T) {
		store := memstore.NewStore()
		uc := NewUseCase(store, nopLogger{})

		addBooking(t, store, "user-1", "2026-03-15", domain.StatusUpcoming)

		resp, err := uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15",
		})

		require.NoError(t, err)
		assert.True(t, resp.CanBook)
		assert.Nil(t, resp.Reason)
	})

	t.Run("user at limit cannot book", func(t *testing.T) {
		store := memstore.NewStore()
		uc := NewUseCase(store, nopLogger{})

		addBooking(t, store, "user-1", "2026-03-15", domain.StatusUpcoming)
		addBooking(t, store, "user-1", "2026-03-15", domain.StatusUpcoming)

		resp, err := uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15",
		})

		require.NoError(t, err)
		assert.False(t, resp.CanBook)
		require.NotNil(t, resp.Reason)
		assert.Contains(t, *resp.Reason, "Maximum 2 bookings")
	})

	t.Run("only upcoming bookings count", func(t *testing.T) {
		store := memstore.NewStore()
		uc := NewUseCase(store, nopLogger{})

		addBooking(t, store, "user-1", "2026-03-15", domain.StatusUpcoming)
		addBooking(t, store, "user-1", "2026-03-15", domain.StatusCancelled)
		addBooking(t, store, "user-1", "2026-03-15", domain.StatusCompleted)

		resp, err := uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15",
		})

		require.NoError(t, err)
		assert.True(t, resp.CanBook)
	})

	t.Run("missing parameters are rejected", func(t *testing.T) {
		store := memstore.NewStore()
		uc := NewUseCase(store, nopLogger{})

		for _, req := range []*Request{
			{FacilityID: "vr-1", Date: "2026-03-15"},
			{UserID: "user-1", Date: "2026-03-15"},
			{UserID: "user-1", FacilityID: "vr-1"},
			{UserID: "user-1", FacilityID: "vr-1", Date: "not-a-date"},
		} {
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}
