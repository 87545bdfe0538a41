package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("14:00")

		require.NoError(t, err)
		assert.Equal(t, TimeString("14:00"), ts)
	})

	t.Run("missing leading zero is rejected", func(t *testing.T) {
		_, err := NewTimeStringFromString("9:00")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:99")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("end of day boundary is accepted", func(t *testing.T) {
		ts, err := NewTimeStringFromString("24:00")

		require.NoError(t, err)
		assert.Equal(t, TimeString("24:00"), ts)
	})

	t.Run("past end of day is rejected", func(t *testing.T) {
		_, err := NewTimeStringFromString("24:30")
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestFromHour(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), FromHour(9))
	assert.Equal(t, TimeString("17:00"), FromHour(17))
}

func TestTimeString_Hour(t *testing.T) {
	hour, err := TimeString("14:00").Hour()

	require.NoError(t, err)
	assert.Equal(t, 14, hour)

	hour, err = TimeString("24:00").Hour()

	require.NoError(t, err)
	assert.Equal(t, 24, hour)
}

func TestTimeString_AddHours(t *testing.T) {
	t.Run("within the day", func(t *testing.T) {
		ts, err := TimeString("15:00").AddHours(1)

		require.NoError(t, err)
		assert.Equal(t, TimeString("16:00"), ts)
	})

	t.Run("last hour ends at day boundary, not midnight", func(t *testing.T) {
		ts, err := TimeString("23:00").AddHours(1)

		require.NoError(t, err)
		assert.Equal(t, TimeString("24:00"), ts)
	})

	t.Run("shift past the day boundary is rejected", func(t *testing.T) {
		_, err := TimeString("23:00").AddHours(2)
		assert.ErrorIs(t, err, ErrInvalidTimeString)

		_, err = TimeString("24:00").AddHours(1)
		assert.ErrorIs(t, err, ErrInvalidTimeString)

		_, err = TimeString("01:00").AddHours(-2)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("14:00"))
	assert.False(t, TimeString("14:00").IsBefore("14:00"))
	assert.True(t, TimeString("15:00").IsAfter("14:00"))
	// "24:00" лексикографически позже любого времени суток
	assert.True(t, TimeString("23:00").IsBefore("24:00"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres TIME with seconds is trimmed", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:00:00"))
		assert.Equal(t, TimeString("14:00"), ts)
	})

	t.Run("end of day TIME value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("24:00:00"))
		assert.Equal(t, TimeString("24:00"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:00")))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:00"), ts)
	})

	t.Run("nil resets value", func(t *testing.T) {
		ts := TimeString("14:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		v, err := TimeString("14:00").Value()

		require.NoError(t, err)
		assert.Equal(t, "14:00", v)
	})

	t.Run("zero value maps to NULL", func(t *testing.T) {
		v, err := TimeString("").Value()

		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid time returns error", func(t *testing.T) {
		_, err := TimeString("bad").Value()
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
