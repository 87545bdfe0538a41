package facilities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradita-lab/Lab-BookingService/internal/infra/storage/memstore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(t *testing.T) *Service {
	t.Helper()

	store := memstore.NewStore()
	memstore.SeedFacilities(store)
	return NewService(store.Facilities(), nopLogger{})
}

func TestService_List(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Facilities, 3)

	// Порядок каталога стабилен
	assert.Equal(t, "soldering-1", resp.Facilities[0].ID)
	assert.Equal(t, "dev-pc-1", resp.Facilities[1].ID)
	assert.Equal(t, "vr-1", resp.Facilities[2].ID)

	devPC := resp.Facilities[1]
	assert.Equal(t, "development-pc", devPC.Type)
	assert.Equal(t, 3, devPC.Capacity)
	assert.Equal(t, "09:00 - 17:00", devPC.OperatingHours.Display)
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("existing facility", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, "vr-1")

		require.NoError(t, err)
		assert.Equal(t, "VR Headset", resp.Name)
		assert.Equal(t, 9, resp.OperatingHours.OpenHour)
		assert.Equal(t, 17, resp.OperatingHours.CloseHour)
		require.NotNil(t, resp.Note)
		assert.Equal(t, "Clean lenses after use", *resp.Note)
	})

	t.Run("unknown facility", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "laser-cutter-1")
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
