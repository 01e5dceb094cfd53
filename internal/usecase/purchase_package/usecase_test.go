package purchase_package

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	waitlistRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/waitlist"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	"github.com/m04kA/WN-BookingService/pkg/ptr"
)

type fakePackageRepo struct {
	created []*domain.PackageAccount
	nextID  int64
}

func (f *fakePackageRepo) Create(_ context.Context, a *domain.PackageAccount) (*domain.PackageAccount, error) {
	f.nextID++
	a.ID = f.nextID
	f.created = append(f.created, a)
	return a, nil
}

type fakeWaitlistRepo struct {
	entries  map[string]*domain.WaitlistEntry
	redeemed []int64
}

func (f *fakeWaitlistRepo) GetByCode(_ context.Context, code string) (*domain.WaitlistEntry, error) {
	entry, ok := f.entries[code]
	if !ok {
		return nil, waitlistRepo.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeWaitlistRepo) MarkRedeemed(_ context.Context, id int64) error {
	f.redeemed = append(f.redeemed, id)
	return nil
}

type fakeCustomerRepo struct {
	blocked map[string]bool
}

func (f *fakeCustomerRepo) IsBlocked(_ context.Context, email string) (bool, error) {
	return f.blocked[email], nil
}

type fakeMailer struct {
	sent []mailer.Message
}

func (f *fakeMailer) SendWithGracefulDegradation(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
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
	uc       *UseCase
	packages *fakePackageRepo
	waitlist *fakeWaitlistRepo
	mails    *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		packages: &fakePackageRepo{},
		waitlist: &fakeWaitlistRepo{entries: map[string]*domain.WaitlistEntry{
			"INVITE-OK": {ID: 11, Email: "friend@example.com", Status: domain.WaitlistInvited},
			"INVITE-USED": {
				ID: 12, Email: "late@example.com", Status: domain.WaitlistRedeemed,
				RedeemedAt: ptr.Ptr(time.Now()),
			},
		}},
		mails: &fakeMailer{},
	}

	f.uc = NewUseCase(
		f.packages,
		f.waitlist,
		&fakeCustomerRepo{blocked: map[string]bool{"blocked@example.com": true}},
		f.mails,
		&fakeTxManager{},
		nopLogger{},
	)

	return f
}

func validRequest() *Request {
	return &Request{
		Name:    "Maria",
		Surname: "Papadopoulou",
		Mobile:  "+306912345678",
		Email:   "maria@example.com",
		Type:    "package10",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "package10", resp.Type)
	assert.Equal(t, 10, resp.TotalSessions)
	assert.Equal(t, 0, resp.UsedSessions)
	assert.False(t, resp.Activated)
	assert.Equal(t, "unpaid", resp.Payment)
	assert.False(t, resp.BonusGranted)

	assert.True(t, strings.HasPrefix(resp.ActivationCode, domain.ActivationCodePrefix+"-"))
	assert.Len(t, resp.ActivationCode, len(domain.ActivationCodePrefix)+10)

	require.Len(t, f.mails.sent, 1)
	assert.Equal(t, mailer.TemplatePackagePurchased, f.mails.sent[0].Template)
	assert.Equal(t, resp.ActivationCode, f.mails.sent[0].Params["activation_code"])
}

func TestExecute_RedemptionBonus(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Type = "package8"
	req.RedemptionCode = ptr.Ptr("INVITE-OK")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 9, resp.TotalSessions)
	assert.True(t, resp.BonusGranted)
	assert.Equal(t, []int64{11}, f.waitlist.redeemed)
}

func TestExecute_RedemptionCodeNotFound(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.RedemptionCode = ptr.Ptr("NO-SUCH-CODE")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRedemptionCodeNotFound)
	assert.Empty(t, f.packages.created)
}

func TestExecute_RedemptionCodeAlreadyUsed(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.RedemptionCode = ptr.Ptr("INVITE-USED")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRedemptionCodeUsed)
	assert.Empty(t, f.packages.created)
	assert.Empty(t, f.waitlist.redeemed)
}

func TestExecute_BlockedCustomer(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Email = "blocked@example.com"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerBlocked)
}

func TestExecute_ValidationFailures(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.Name = "" }},
		{"name too long", func(r *Request) { r.Name = strings.Repeat("а", domain.MaxNameLength+1) }},
		{"bad email", func(r *Request) { r.Email = "nope" }},
		{"unknown type", func(r *Request) { r.Type = "package99" }},
		{"empty redemption code", func(r *Request) { r.RedemptionCode = ptr.Ptr("  ") }},
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
