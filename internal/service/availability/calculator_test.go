package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

func testSchedule() *domain.StudioSchedule {
	return &domain.StudioSchedule{
		Version:                1,
		Timezone:               "Europe/Athens",
		WorkingDays:            []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		DefaultSlots:           []types.TimeString{"18:00", "19:00", "20:00"},
		DefaultDurationMinutes: 45,
		DayOverrides: map[string]domain.DayOverride{
			"2026-01-29": {
				Slots:           []types.TimeString{"18:15", "19:15", "20:15"},
				DurationMinutes: 50,
			},
		},
	}
}

func athens(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	return loc
}

func booking(start types.TimeString, kind domain.BookingKind, status domain.ReservationStatus) *domain.Booking {
	return &domain.Booking{StartTime: start, Kind: kind, Status: status}
}

// 2026-01-30 is a Friday
var testDate = time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

func TestBuildDaySlots_EmptyDay(t *testing.T) {
	sched := testSchedule()
	now := time.Date(2026, 1, 29, 10, 0, 0, 0, athens(t))

	slots, err := BuildDaySlots(sched, testDate, now, nil)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	for _, slot := range slots {
		assert.Equal(t, 0, slot.SeatsOccupied)
		assert.Equal(t, domain.SlotCapacity, slot.SeatsAvailable)
		assert.False(t, slot.IsFull)
		assert.False(t, slot.IsPastOrTooSoon)
	}

	assert.Equal(t, "18:00", slots[0].StartTime.String())
	assert.Equal(t, "18:45", slots[0].EndTime.String())
	assert.Equal(t, 45, slots[0].DurationMinutes)
}

func TestBuildDaySlots_OverriddenDay(t *testing.T) {
	sched := testSchedule()
	now := time.Date(2026, 1, 28, 10, 0, 0, 0, athens(t))
	date := time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC)

	slots, err := BuildDaySlots(sched, date, now, nil)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, "18:15", slots[0].StartTime.String())
	assert.Equal(t, "19:05", slots[0].EndTime.String())
	assert.Equal(t, 50, slots[0].DurationMinutes)
}

func TestBuildDaySlots_SeatAccounting(t *testing.T) {
	sched := testSchedule()
	now := time.Date(2026, 1, 29, 10, 0, 0, 0, athens(t))

	bookings := []*domain.Booking{
		booking("18:00", domain.KindSingle, domain.StatusConfirmed),
		booking("18:00", domain.KindDuo, domain.StatusPending),
		booking("18:00", domain.KindSingle, domain.StatusCancelled), // не считается
		booking("18:00", domain.KindSingle, domain.StatusNoShow),    // не считается
		booking("19:00", domain.KindSingle, domain.StatusAttended),
	}

	slots, err := BuildDaySlots(sched, testDate, now, bookings)
	require.NoError(t, err)

	assert.Equal(t, 3, slots[0].SeatsOccupied)
	assert.Equal(t, 1, slots[0].SeatsAvailable)
	assert.False(t, slots[0].IsFull)

	assert.Equal(t, 1, slots[1].SeatsOccupied)
	assert.Equal(t, 3, slots[1].SeatsAvailable)

	assert.Equal(t, 0, slots[2].SeatsOccupied)
}

func TestBuildDaySlots_FullSlot(t *testing.T) {
	sched := testSchedule()
	now := time.Date(2026, 1, 29, 10, 0, 0, 0, athens(t))

	bookings := []*domain.Booking{
		booking("18:00", domain.KindSingle, domain.StatusConfirmed),
		booking("18:00", domain.KindSingle, domain.StatusConfirmed),
		booking("18:00", domain.KindSingle, domain.StatusConfirmed),
		booking("18:00", domain.KindSingle, domain.StatusConfirmed),
	}

	slots, err := BuildDaySlots(sched, testDate, now, bookings)
	require.NoError(t, err)

	assert.Equal(t, 4, slots[0].SeatsOccupied)
	assert.Equal(t, 0, slots[0].SeatsAvailable)
	assert.True(t, slots[0].IsFull)
	assert.False(t, slots[0].CanFit(1))
}

func TestBuildDaySlots_IndividualExclusivity(t *testing.T) {
	sched := testSchedule()
	now := time.Date(2026, 1, 29, 10, 0, 0, 0, athens(t))

	bookings := []*domain.Booking{
		booking("19:00", domain.KindIndividual, domain.StatusConfirmed),
	}

	slots, err := BuildDaySlots(sched, testDate, now, bookings)
	require.NoError(t, err)

	// индивидуальное занятие занимает слот целиком
	assert.Equal(t, domain.SlotCapacity, slots[1].SeatsOccupied)
	assert.Equal(t, 0, slots[1].SeatsAvailable)
	assert.True(t, slots[1].IsFull)
	assert.False(t, slots[1].CanFit(1))
}

func TestBuildDaySlots_CutoffBoundary(t *testing.T) {
	sched := testSchedule()
	loc := athens(t)

	// 17:56 местного: до слота 18:00 осталось 4 минуты - бронировать поздно
	now := time.Date(2026, 1, 30, 17, 56, 0, 0, loc)
	slots, err := BuildDaySlots(sched, testDate, now, nil)
	require.NoError(t, err)
	assert.True(t, slots[0].IsPastOrTooSoon)
	assert.False(t, slots[0].CanFit(1))
	assert.False(t, slots[1].IsPastOrTooSoon)

	// 17:54 местного: до слота ровно 6 минут - ещё можно
	now = time.Date(2026, 1, 30, 17, 54, 0, 0, loc)
	slots, err = BuildDaySlots(sched, testDate, now, nil)
	require.NoError(t, err)
	assert.False(t, slots[0].IsPastOrTooSoon)

	// граница: ровно 5 минут до начала - ещё можно
	now = time.Date(2026, 1, 30, 17, 55, 0, 0, loc)
	slots, err = BuildDaySlots(sched, testDate, now, nil)
	require.NoError(t, err)
	assert.False(t, slots[0].IsPastOrTooSoon)
}

func TestBuildDaySlots_CutoffUsesStudioTimezone(t *testing.T) {
	sched := testSchedule()

	// 15:56 UTC == 17:56 в Афинах (зимнее время, UTC+2):
	// наивное сравнение в UTC посчитало бы, что до 18:00 ещё два часа
	now := time.Date(2026, 1, 30, 15, 56, 0, 0, time.UTC)

	slots, err := BuildDaySlots(sched, testDate, now, nil)
	require.NoError(t, err)
	assert.True(t, slots[0].IsPastOrTooSoon)
}

func TestBuildDaySlots_NoConfiguredSlots(t *testing.T) {
	sched := testSchedule()
	sched.DefaultSlots = nil
	now := time.Date(2026, 1, 29, 10, 0, 0, 0, athens(t))

	slots, err := BuildDaySlots(sched, testDate, now, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestIsBookableDate(t *testing.T) {
	sched := testSchedule()
	sched.CampaignStart = time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	sched.CampaignEnd = time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	sched.BlockedDates = []string{"2026-01-27"}

	assert.True(t, IsBookableDate(sched, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsBookableDate(sched, time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC))) // заблокирована
	assert.False(t, IsBookableDate(sched, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))) // суббота
	assert.False(t, IsBookableDate(sched, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))  // вне окна кампании
}

func TestFindSlot(t *testing.T) {
	slots := []domain.SlotAvailability{
		{StartTime: "18:00"},
		{StartTime: "19:00"},
	}

	found := FindSlot(slots, "19:00")
	require.NotNil(t, found)
	assert.Equal(t, "19:00", found.StartTime.String())

	assert.Nil(t, FindSlot(slots, "21:00"))
}
