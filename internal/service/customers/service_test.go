package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	customerRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/customer"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListForCustomer(_ context.Context, email string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Email == email {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	kept := f.bookings[:0]
	var deleted int64
	for _, b := range f.bookings {
		if b.Email == email {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	f.bookings = kept
	return deleted, nil
}

type fakePackageRepo struct {
	emails  []string
	deleted []string
}

func (f *fakePackageRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	f.deleted = append(f.deleted, email)
	var count int64
	for _, e := range f.emails {
		if e == email {
			count++
		}
	}
	return count, nil
}

type fakeWaitlistRepo struct {
	deleted []string
}

func (f *fakeWaitlistRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	f.deleted = append(f.deleted, email)
	return 1, nil
}

type fakeCustomerRepo struct {
	blocked map[string]bool
}

func (f *fakeCustomerRepo) Block(_ context.Context, email string, _ string) error {
	f.blocked[email] = true
	return nil
}

func (f *fakeCustomerRepo) Unblock(_ context.Context, email string) error {
	if !f.blocked[email] {
		return customerRepo.ErrNotBlocked
	}
	delete(f.blocked, email)
	return nil
}

func (f *fakeCustomerRepo) IsBlocked(_ context.Context, email string) (bool, error) {
	return f.blocked[email], nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(_ context.Context, date time.Time) error {
	f.invalidated = append(f.invalidated, domain.DateKey(date))
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc       *Service
	bookings  *fakeBookingRepo
	packages  *fakePackageRepo
	waitlist  *fakeWaitlistRepo
	customers *fakeCustomerRepo
	cache     *fakeCache
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 1, Email: "maria@example.com", BookingDate: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Email: "maria@example.com", BookingDate: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)},
			{ID: 3, Email: "nikos@example.com", BookingDate: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)},
		}},
		packages:  &fakePackageRepo{emails: []string{"maria@example.com"}},
		waitlist:  &fakeWaitlistRepo{},
		customers: &fakeCustomerRepo{blocked: map[string]bool{}},
		cache:     &fakeCache{},
	}

	f.svc = NewService(f.bookings, f.packages, f.waitlist, f.customers, f.cache, &fakeTxManager{}, nopLogger{})
	return f
}

func TestBlockUnblock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.Block(ctx, "maria@example.com", "chargeback"))

	blocked, err := f.svc.IsBlocked(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, f.svc.Unblock(ctx, "maria@example.com"))

	blocked, err = f.svc.IsBlocked(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestUnblock_NotBlocked(t *testing.T) {
	f := newFixture()

	err := f.svc.Unblock(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotBlocked)
}

func TestBlock_EmptyEmail(t *testing.T) {
	f := newFixture()

	err := f.svc.Block(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_Cascade(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.svc.Delete(context.Background(), "maria@example.com"))

	// брони клиента удалены, чужие остались
	assert.Len(t, f.bookings.bookings, 1)
	assert.Equal(t, "nikos@example.com", f.bookings.bookings[0].Email)

	assert.Equal(t, []string{"maria@example.com"}, f.packages.deleted)
	assert.Equal(t, []string{"maria@example.com"}, f.waitlist.deleted)

	// снапшоты затронутых дат сброшены, по одному на дату
	assert.ElementsMatch(t, []string{"2026-01-30", "2026-02-02"}, f.cache.invalidated)
}
