package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	bookingRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/booking"
	facilityRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/facility"
	"github.com/pradita-lab/Lab-BookingService/pkg/types"
)

func newBooking(userID, facilityID, date string) *domain.Booking {
	return &domain.Booking{
		UserID:        userID,
		FacilityID:    facilityID,
		Date:          date,
		StartTime:     "14:00",
		EndTime:       "15:00",
		DurationHours: 1,
		Status:        domain.StatusUpcoming,
	}
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		store := NewStore()

		created, err := store.Create(ctx, newBooking("user-1", "vr-1", "2026-03-15"))

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("rejects incomplete booking", func(t *testing.T) {
		store := NewStore()

		_, err := store.Create(ctx, &domain.Booking{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrInvalidBooking)
	})

	t.Run("stored copy is isolated from caller", func(t *testing.T) {
		store := NewStore()

		created, err := store.Create(ctx, newBooking("user-1", "vr-1", "2026-03-15"))
		require.NoError(t, err)

		created.Status = domain.StatusCancelled

		stored, err := store.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUpcoming, stored.Status)
	})
}

func TestStore_ErrorsMatchSQLRepositories(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	// Сентинелы должны совпадать с Postgres репозиториями, чтобы
	// вызывающий код не зависел от бэкенда
	_, err := store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)

	_, err = store.GetFacilityByID(ctx, "missing")
	assert.ErrorIs(t, err, facilityRepo.ErrFacilityNotFound)
}

func TestStore_GetByFacilityAndDate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Create(ctx, newBooking("user-1", "vr-1", "2026-03-15"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newBooking("user-2", "vr-1", "2026-03-16"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newBooking("user-3", "dev-pc-1", "2026-03-15"))
	require.NoError(t, err)

	got, err := store.GetByFacilityAndDate(ctx, "vr-1", "2026-03-15", nil)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "user-1", got[0].UserID)
}

func TestTxManager_MutualExclusionPerKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	txm := NewTxManager()

	// Классическая гонка check-then-insert: без взаимного исключения оба
	// работника увидели бы пустой слот
	const workers = 8

	var wg sync.WaitGroup
	created := make([]bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = txm.DoSerializable(ctx, func(txCtx context.Context) error {
				existing, err := store.GetByFacilityAndDate(txCtx, "vr-1", "2026-03-15", []domain.BookingStatus{domain.StatusUpcoming})
				if err != nil {
					return err
				}
				if len(existing) > 0 {
					return nil
				}
				if _, err := store.Create(txCtx, newBooking("user", "vr-1", "2026-03-15")); err != nil {
					return err
				}
				created[i] = true
				return nil
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, ok := range created {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	all, err := store.GetByFacilityAndDate(ctx, "vr-1", "2026-03-15", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTxManager_MutualExclusionPerUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	txm := NewTxManager()

	// Дневной лимит проверяется как check-then-insert по счетчику
	// пользователя: без ключа (userID, date) два параллельных создания
	// могли бы оба увидеть count < 2
	const workers = 8
	const limit = 2

	var wg sync.WaitGroup
	var createdMu sync.Mutex
	created := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = txm.DoSerializable(ctx, func(txCtx context.Context) error {
				count, err := store.CountByUserAndDate(txCtx, "user-1", "2026-03-15", domain.StatusUpcoming)
				if err != nil {
					return err
				}
				if count >= limit {
					return nil
				}

				b := newBooking("user-1", "vr-1", "2026-03-15")
				b.StartTime = types.FromHour(9 + i)
				b.EndTime = types.FromHour(10 + i)
				if _, err := store.Create(txCtx, b); err != nil {
					return err
				}

				createdMu.Lock()
				created++
				createdMu.Unlock()
				return nil
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, limit, created)

	all, err := store.GetByUserID(ctx, "user-1", nil)
	require.NoError(t, err)
	assert.Len(t, all, limit)
}

func TestTxManager_NestedTransactionReusesOuter(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	txm := NewTxManager()

	err := txm.DoSerializable(ctx, func(outerCtx context.Context) error {
		// Повторный захват того же ключа внутри транзакции не должен блокировать
		if _, err := store.GetByFacilityAndDate(outerCtx, "vr-1", "2026-03-15", nil); err != nil {
			return err
		}

		return txm.DoSerializable(outerCtx, func(innerCtx context.Context) error {
			_, err := store.GetByFacilityAndDate(innerCtx, "vr-1", "2026-03-15", nil)
			return err
		})
	})

	assert.NoError(t, err)
}
