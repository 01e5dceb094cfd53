package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/pkg/types"
)

func testSchedule() *StudioSchedule {
	return &StudioSchedule{
		Version:                1,
		Timezone:               "Europe/Athens",
		WorkingDays:            []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		DefaultSlots:           []types.TimeString{"18:00", "19:00", "20:00"},
		DefaultDurationMinutes: 45,
		DayOverrides: map[string]DayOverride{
			"2026-01-29": {
				Slots:           []types.TimeString{"18:15", "19:15", "20:15"},
				DurationMinutes: 50,
			},
		},
		BlockedDates: []string{"2026-02-14"},
	}
}

func TestStudioSchedule_SlotsForDate(t *testing.T) {
	s := testSchedule()

	overridden := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []types.TimeString{"18:15", "19:15", "20:15"}, s.SlotsForDate(overridden))

	plain := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, s.DefaultSlots, s.SlotsForDate(plain))
}

func TestStudioSchedule_DurationForDate(t *testing.T) {
	s := testSchedule()

	overridden := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 50, s.DurationForDate(overridden))

	plain := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 45, s.DurationForDate(plain))
}

func TestStudioSchedule_EndTime(t *testing.T) {
	s := testSchedule()

	end, err := s.EndTime("18:15", time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "19:05", end.String())

	end, err = s.EndTime("18:00", time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "18:45", end.String())
}

func TestStudioSchedule_IsWorkingDay(t *testing.T) {
	s := testSchedule()

	// 2026-01-29 is a Thursday, 2026-02-01 a Sunday
	assert.True(t, s.IsWorkingDay(time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsWorkingDay(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestStudioSchedule_BlockUnblock(t *testing.T) {
	s := testSchedule()
	date := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.IsBlocked(date))

	s.UnblockDate(date)
	assert.False(t, s.IsBlocked(date))

	s.BlockDate(date)
	s.BlockDate(date) // повторный вызов не дублирует дату
	assert.True(t, s.IsBlocked(date))
	assert.Len(t, s.BlockedDates, 1)
}

func TestStudioSchedule_Contains(t *testing.T) {
	s := testSchedule()
	s.CampaignStart = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	s.CampaignEnd = time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.Contains(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.Contains(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.Contains(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
}
