package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:15")
	require.NoError(t, err)
	assert.Equal(t, "18:15", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("18.15")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{"within hour", "18:00", 45, "18:45"},
		{"crosses hour", "18:15", 50, "19:05"},
		{"crosses midnight", "23:40", 50, "00:30"},
		{"zero", "10:00", 0, "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := TimeString(tt.start)
			got, err := ts.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
	assert.True(t, TimeString("20:15").IsAfter("19:15"))
}

func TestTimeString_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)

	date := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)
	got, err := TimeString("18:15").At(date, loc)
	require.NoError(t, err)

	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 15, got.Minute())
	assert.Equal(t, loc, got.Location())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:15:00"))
	assert.Equal(t, "18:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
