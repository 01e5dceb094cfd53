package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	byDate map[string][]*domain.Booking
	calls  int
}

func (f *fakeBookingRepo) ListForDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	f.calls++
	return f.byDate[domain.DateKey(date)], nil
}

type fakeScheduleRepo struct {
	sched *domain.StudioSchedule
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.StudioSchedule, error) {
	return f.sched, nil
}

type fakeCache struct {
	days map[string]*domain.DayAvailability
}

func (f *fakeCache) Get(_ context.Context, date time.Time) (*domain.DayAvailability, error) {
	return f.days[domain.DateKey(date)], nil
}

func (f *fakeCache) Set(_ context.Context, day *domain.DayAvailability) error {
	f.days[domain.DateKey(day.Date)] = day
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) (*UseCase, *fakeBookingRepo, *fakeCache) {
	t.Helper()

	sched := &domain.StudioSchedule{
		Version:                1,
		Timezone:               "Europe/Athens",
		WorkingDays:            []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		DefaultSlots:           []types.TimeString{"18:00", "19:00"},
		DefaultDurationMinutes: 50,
	}

	bookings := &fakeBookingRepo{byDate: map[string][]*domain.Booking{
		"2026-01-30": {
			{StartTime: "18:00", Kind: domain.KindDuo, Status: domain.StatusConfirmed},
		},
	}}
	cache := &fakeCache{days: map[string]*domain.DayAvailability{}}

	uc := NewUseCase(bookings, &fakeScheduleRepo{sched: sched}, cache, nopLogger{})

	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	uc.timeProvider = &fixedTime{now: time.Date(2026, 1, 30, 10, 0, 0, 0, loc)}

	return uc, bookings, cache
}

func TestExecute_ReturnsBookableDays(t *testing.T) {
	uc, _, _ := newFixture(t)

	resp, err := uc.Execute(context.Background(), &Request{
		From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Days: 3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	// пятница, затем выходные пропущены
	assert.Equal(t, "2026-01-30", domain.DateKey(resp.Days[0].Date))
	assert.Equal(t, "2026-02-02", domain.DateKey(resp.Days[1].Date))
	assert.Equal(t, "2026-02-03", domain.DateKey(resp.Days[2].Date))

	require.Len(t, resp.Days[0].Slots, 2)
	assert.Equal(t, 2, resp.Days[0].Slots[0].SeatsOccupied)
	assert.Equal(t, 2, resp.Days[0].Slots[0].SeatsAvailable)
	assert.Equal(t, 0, resp.Days[1].Slots[0].SeatsOccupied)
}

func TestExecute_SkipsFullyBookedDays(t *testing.T) {
	uc, bookings, _ := newFixture(t)

	// оба слота пятницы заняты индивидуальными занятиями целиком
	bookings.byDate["2026-01-30"] = []*domain.Booking{
		{StartTime: "18:00", Kind: domain.KindIndividual, Status: domain.StatusConfirmed},
		{StartTime: "19:00", Kind: domain.KindIndividual, Status: domain.StatusConfirmed},
	}

	resp, err := uc.Execute(context.Background(), &Request{
		From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Days: 2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	// пятница полностью занята и в ответ не попадает, days отсчитывается
	// по дням, куда ещё можно записаться
	assert.Equal(t, "2026-02-02", domain.DateKey(resp.Days[0].Date))
	assert.Equal(t, "2026-02-03", domain.DateKey(resp.Days[1].Date))
}

func TestExecute_SkipsDaysWithOnlyPastSlots(t *testing.T) {
	uc, _, _ := newFixture(t)

	// 21:30 местного: оба слота пятницы уже начались
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	uc.timeProvider = &fixedTime{now: time.Date(2026, 1, 30, 21, 30, 0, 0, loc)}

	resp, err := uc.Execute(context.Background(), &Request{
		From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Days: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2026-02-02", domain.DateKey(resp.Days[0].Date))
}

func TestExecute_UsesCache(t *testing.T) {
	uc, bookings, cache := newFixture(t)

	req := &Request{From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), Days: 2}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	firstCalls := bookings.calls
	assert.Len(t, cache.days, 2)

	// повторный запрос целиком из кэша
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, firstCalls, bookings.calls)
}

func TestExecute_DefaultsAndLimits(t *testing.T) {
	uc, _, _ := newFixture(t)

	resp, err := uc.Execute(context.Background(), &Request{
		From: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Days, defaultDays)

	_, err = uc.Execute(context.Background(), &Request{Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
