package availability

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, 15*time.Second), mr
}

func testDay() *domain.DayAvailability {
	return &domain.DayAvailability{
		Date: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Slots: []domain.SlotAvailability{
			{StartTime: "18:00", EndTime: "18:45", DurationMinutes: 45, SeatsOccupied: 1, SeatsAvailable: 3},
			{StartTime: "19:00", EndTime: "19:45", DurationMinutes: 45, SeatsAvailable: 4},
		},
	}
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, testDay()))

	date := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	got, err := cache.Get(ctx, date)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "2026-01-30", domain.DateKey(got.Date))
	require.Len(t, got.Slots, 2)
	assert.Equal(t, 3, got.Slots[0].SeatsAvailable)
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, testDay()))
	require.NoError(t, cache.Invalidate(ctx, date))

	got, err := cache.Get(ctx, date)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, testDay()))

	mr.FastForward(16 * time.Second)

	got, err := cache.Get(ctx, date)
	require.NoError(t, err)
	assert.Nil(t, got)
}
