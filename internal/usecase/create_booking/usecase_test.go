package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	pkgRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/pkgaccount"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.created = append(f.created, b)
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookingRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakePackageRepo struct {
	account *domain.PackageAccount
}

func (f *fakePackageRepo) GetActiveByEmail(_ context.Context, _ string) (*domain.PackageAccount, error) {
	if f.account == nil {
		return nil, pkgRepo.ErrAccountNotFound
	}
	return f.account, nil
}

func (f *fakePackageRepo) Debit(_ context.Context, id int64) (*domain.PackageAccount, error) {
	if f.account == nil || f.account.ID != id {
		return nil, pkgRepo.ErrAccountNotFound
	}
	if f.account.UsedSessions >= f.account.TotalSessions {
		return nil, pkgRepo.ErrNoSessionsRemaining
	}
	f.account.UsedSessions++
	return f.account, nil
}

type fakeScheduleRepo struct {
	sched *domain.StudioSchedule
}

func (f *fakeScheduleRepo) Get(_ context.Context) (*domain.StudioSchedule, error) {
	return f.sched, nil
}

type fakeCustomerRepo struct {
	blocked map[string]bool
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

type fakeMailer struct {
	sent []mailer.Message
}

func (f *fakeMailer) SendWithGracefulDegradation(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	sched    *domain.StudioSchedule
	bookings *fakeBookingRepo
	packages *fakePackageRepo
	cache    *fakeCache
	mails    *fakeMailer
}

// 2026-01-30 is a Friday
var testDate = time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	sched := &domain.StudioSchedule{
		Version:                1,
		Timezone:               "Europe/Athens",
		WorkingDays:            []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		DefaultSlots:           []types.TimeString{"18:00", "19:00", "20:00"},
		DefaultDurationMinutes: 50,
	}

	f := &fixture{
		sched:    sched,
		bookings: &fakeBookingRepo{},
		packages: &fakePackageRepo{},
		cache:    &fakeCache{},
		mails:    &fakeMailer{},
	}

	f.uc = NewUseCase(
		f.bookings,
		f.packages,
		&fakeScheduleRepo{sched: sched},
		&fakeCustomerRepo{blocked: map[string]bool{"blocked@example.com": true}},
		f.cache,
		f.mails,
		&fakeTxManager{},
		nopLogger{},
	)

	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 1, 30, 10, 0, 0, 0, loc)}

	return f
}

func validRequest() *Request {
	return &Request{
		Name:      "Maria",
		Surname:   "Papadopoulou",
		Mobile:    "+306912345678",
		Email:     "maria@example.com",
		Date:      testDate,
		StartTime: "18:00",
		Kind:      "single",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.Payment)
	assert.Equal(t, "18:50", resp.EndTime.String())
	assert.Nil(t, resp.PackageID)

	require.Len(t, f.bookings.created, 1)
	assert.Equal(t, domain.StatusPending, f.bookings.created[0].Status)

	assert.Equal(t, []string{"2026-01-30"}, f.cache.invalidated)

	require.Len(t, f.mails.sent, 1)
	assert.Equal(t, mailer.TemplateBookingConfirmation, f.mails.sent[0].Template)
	assert.Equal(t, "maria@example.com", f.mails.sent[0].To)
}

func TestExecute_ValidationFailures(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.Name = "" }},
		{"name too long", func(r *Request) { r.Name = strings.Repeat("а", domain.MaxNameLength+1) }},
		{"surname too long", func(r *Request) { r.Surname = strings.Repeat("а", domain.MaxNameLength+1) }},
		{"instructor too long", func(r *Request) { r.Instructor = strings.Repeat("а", domain.MaxInstructorLength+1) }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"unknown kind", func(r *Request) { r.Kind = "triple" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad time format", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_BlockedCustomer(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Email = "blocked@example.com"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerBlocked)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_DateNotBookable(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC) // суббота

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecute_DateBlocked(t *testing.T) {
	f := newFixture(t)
	f.sched.BlockedDates = []string{"2026-01-30"}

	// заблокированная пятница и обычный выходной - разные ошибки
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateBlocked)
	assert.NotErrorIs(t, err, ErrDateNotBookable)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_SlotNotFound(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.StartTime = "17:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotFull(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < domain.SlotCapacity; i++ {
		f.bookings.bookings = append(f.bookings.bookings, &domain.Booking{
			StartTime: "18:00",
			Kind:      domain.KindSingle,
			Status:    domain.StatusConfirmed,
		})
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_DuoNeedsTwoSeats(t *testing.T) {
	f := newFixture(t)

	// 3 из 4 мест заняты - дуэту не хватает
	for i := 0; i < 3; i++ {
		f.bookings.bookings = append(f.bookings.bookings, &domain.Booking{
			StartTime: "18:00",
			Kind:      domain.KindSingle,
			Status:    domain.StatusConfirmed,
		})
	}

	req := validRequest()
	req.Kind = "duo"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_IndividualNeedsEmptySlot(t *testing.T) {
	f := newFixture(t)

	f.bookings.bookings = append(f.bookings.bookings, &domain.Booking{
		StartTime: "18:00",
		Kind:      domain.KindSingle,
		Status:    domain.StatusConfirmed,
	})

	req := validRequest()
	req.Kind = "individual"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_CancelledBookingsFreeSeats(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < domain.SlotCapacity; i++ {
		f.bookings.bookings = append(f.bookings.bookings, &domain.Booking{
			StartTime: "18:00",
			Kind:      domain.KindSingle,
			Status:    domain.StatusCancelled,
		})
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_TooLateToBook(t *testing.T) {
	f := newFixture(t)

	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 1, 30, 17, 57, 0, 0, loc)}

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_PackageBookingDebitsSession(t *testing.T) {
	f := newFixture(t)
	f.packages.account = &domain.PackageAccount{
		ID:            7,
		Email:         "maria@example.com",
		Type:          domain.Package8,
		TotalSessions: 8,
		UsedSessions:  3,
		Activated:     true,
	}

	req := validRequest()
	req.Kind = "package8"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.PackageID)
	assert.Equal(t, int64(7), *resp.PackageID)
	require.NotNil(t, resp.SessionsRemaining)
	assert.Equal(t, 4, *resp.SessionsRemaining)
	assert.Equal(t, 4, f.packages.account.UsedSessions)
}

func TestExecute_PackageBookingWithoutPackage(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Kind = "package8"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoActivePackage)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_PackageExhausted(t *testing.T) {
	f := newFixture(t)
	f.packages.account = &domain.PackageAccount{
		ID:            7,
		Email:         "maria@example.com",
		Type:          domain.Package8,
		TotalSessions: 8,
		UsedSessions:  8,
		Activated:     true,
	}

	req := validRequest()
	req.Kind = "package8"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoSessionsRemaining)
	assert.Empty(t, f.bookings.created)
}
