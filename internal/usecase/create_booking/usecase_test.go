package create_booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	"github.com/pradita-lab/Lab-BookingService/internal/infra/storage/memstore"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *memstore.Store) {
	t.Helper()

	store := memstore.NewStore()
	memstore.SeedFacilities(store)

	uc := NewUseCase(store, store.Facilities(), memstore.NewTxManager(), nopLogger{})
	return uc, store
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("books consecutive slots regardless of request order", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		resp, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "vr-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"15:00", "14:00"},
		})

		require.NoError(t, err)
		b := resp.Booking
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, types.TimeString("14:00"), b.StartTime)
		assert.Equal(t, types.TimeString("16:00"), b.EndTime)
		assert.Equal(t, 2, b.DurationHours)
		assert.Equal(t, domain.StatusUpcoming, b.Status)
		assert.Equal(t, "VR Headset", b.FacilityName)
	})

	t.Run("overlapping booking is rejected with conflicting slots", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "vr-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"14:00", "15:00"},
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID:     "user-2",
			FacilityID: "vr-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"15:00", "16:00"},
		})

		require.ErrorIs(t, err, ErrSlotConflict)
		var conflictErr *SlotConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, []types.TimeString{"15:00"}, conflictErr.Slots)
	})

	t.Run("same slots on another date do not conflict", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "vr-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"14:00"},
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID:     "user-2",
			FacilityID: "vr-1",
			Date:       "2026-03-16",
			TimeSlots:  []types.TimeString{"14:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("gap in slots is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "soldering-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"09:00", "11:00"},
		})

		assert.ErrorIs(t, err, ErrSlotsNotConsecutive)
	})

	t.Run("slot outside operating hours is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "soldering-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"08:00"},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown facility", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "laser-cutter-1",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"14:00"},
		})

		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("daily limit allows two upcoming bookings per date", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "soldering-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"09:00"},
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"10:00"},
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "dev-pc-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"11:00"},
		})
		assert.ErrorIs(t, err, ErrDailyLimitExceeded)

		// Лимит считается на дату, другая дата свободна
		_, err = uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "dev-pc-1", Date: "2026-03-16",
			TimeSlots: []types.TimeString{"11:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("cancelled booking does not count towards daily limit", func(t *testing.T) {
		uc, store := newTestUseCase(t)

		first, err := uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "soldering-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"09:00"},
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"10:00"},
		})
		require.NoError(t, err)

		_, err = store.UpdateStatus(ctx, first.Booking.ID, domain.StatusCancelled)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "dev-pc-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"11:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("cancelled booking frees its slots", func(t *testing.T) {
		uc, store := newTestUseCase(t)

		first, err := uc.Execute(ctx, &Request{
			UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"14:00"},
		})
		require.NoError(t, err)

		_, err = store.UpdateStatus(ctx, first.Booking.ID, domain.StatusCancelled)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{
			UserID: "user-2", FacilityID: "vr-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"14:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("last slot of a late-closing facility stays bookable once", func(t *testing.T) {
		uc, store := newTestUseCase(t)
		store.AddFacility(&domain.Facility{
			ID:        "vr-2",
			Type:      domain.TypeVRHeadset,
			Name:      "VR Headset (evening)",
			Location:  "Lab B",
			OpenHour:  9,
			CloseHour: 23,
			Capacity:  1,
		})

		resp, err := uc.Execute(ctx, &Request{
			UserID:     "user-1",
			FacilityID: "vr-2",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"23:00"},
		})

		require.NoError(t, err)
		// Интервал последнего слота упирается в границу суток, а не в полночь
		assert.Equal(t, types.TimeString("23:00"), resp.Booking.StartTime)
		assert.Equal(t, types.TimeString("24:00"), resp.Booking.EndTime)
		assert.Equal(t, 1, resp.Booking.DurationHours)

		_, err = uc.Execute(ctx, &Request{
			UserID:     "user-2",
			FacilityID: "vr-2",
			Date:       "2026-03-15",
			TimeSlots:  []types.TimeString{"23:00"},
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("pooled facility accepts overlaps up to capacity", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		// dev-pc-1 имеет 3 единицы - три пользователя занимают один слот
		for _, userID := range []string{"user-1", "user-2", "user-3"} {
			_, err := uc.Execute(ctx, &Request{
				UserID: userID, FacilityID: "dev-pc-1", Date: "2026-03-15",
				TimeSlots: []types.TimeString{"14:00"},
			})
			require.NoError(t, err)
		}

		_, err := uc.Execute(ctx, &Request{
			UserID: "user-4", FacilityID: "dev-pc-1", Date: "2026-03-15",
			TimeSlots: []types.TimeString{"14:00"},
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("invalid input is rejected before storage access", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		cases := []*Request{
			{FacilityID: "vr-1", Date: "2026-03-15", TimeSlots: []types.TimeString{"14:00"}},
			{UserID: "user-1", Date: "2026-03-15", TimeSlots: []types.TimeString{"14:00"}},
			{UserID: "user-1", FacilityID: "vr-1", TimeSlots: []types.TimeString{"14:00"}},
			{UserID: "user-1", FacilityID: "vr-1", Date: "15-03-2026", TimeSlots: []types.TimeString{"14:00"}},
			{UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15"},
			{UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15", TimeSlots: []types.TimeString{"14:30"}},
			{UserID: "user-1", FacilityID: "vr-1", Date: "2026-03-15", TimeSlots: []types.TimeString{"14:00", "14:00"}},
		}

		for _, req := range cases {
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestUseCase_Execute_Concurrent(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	const workers = 10

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, &Request{
				UserID:     "user-" + string(rune('a'+i)),
				FacilityID: "vr-1",
				Date:       "2026-03-15",
				TimeSlots:  []types.TimeString{"14:00"},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotConflict)
		}
	}
	// Ровно один из конкурентных запросов получает слот
	assert.Equal(t, 1, succeeded)
}
