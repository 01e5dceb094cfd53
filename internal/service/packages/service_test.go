package packages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WN-BookingService/internal/domain"
	pkgRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/pkgaccount"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	"github.com/m04kA/WN-BookingService/pkg/ptr"
)

type fakePackageRepo struct {
	byID map[int64]*domain.PackageAccount
}

func (f *fakePackageRepo) GetByID(_ context.Context, id int64) (*domain.PackageAccount, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, pkgRepo.ErrAccountNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePackageRepo) ListByEmail(_ context.Context, email string) ([]*domain.PackageAccount, error) {
	result := make([]*domain.PackageAccount, 0)
	for _, p := range f.byID {
		if p.Email == email {
			result = append(result, p)
		}
	}
	// новые первыми
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].PurchasedAt.After(result[i].PurchasedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (f *fakePackageRepo) Activate(_ context.Context, id int64) error {
	p, ok := f.byID[id]
	if !ok {
		return pkgRepo.ErrAccountNotFound
	}
	p.Activated = true
	p.ActivatedAt = ptr.Ptr(time.Now())
	return nil
}

func (f *fakePackageRepo) Gift(_ context.Context, id int64, extra int) (*domain.PackageAccount, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, pkgRepo.ErrAccountNotFound
	}
	p.TotalSessions += extra
	copied := *p
	return &copied, nil
}

func (f *fakePackageRepo) SetPayment(_ context.Context, id int64, payment domain.PaymentStatus) error {
	p, ok := f.byID[id]
	if !ok {
		return pkgRepo.ErrAccountNotFound
	}
	p.Payment = payment
	return nil
}

type fakeMailer struct {
	sent []mailer.Message
}

func (f *fakeMailer) SendWithGracefulDegradation(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakePackageRepo, *fakeMailer) {
	repo := &fakePackageRepo{byID: map[int64]*domain.PackageAccount{
		1: {
			ID: 1, Name: "Maria", Email: "maria@example.com",
			Type: domain.Package8, TotalSessions: 8, UsedSessions: 2,
			ActivationCode: "WN-1111-AAAA", Activated: false,
			Payment: domain.PaymentUnpaid, PurchasedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		2: {
			ID: 2, Name: "Nikos", Email: "nikos@example.com",
			Type: domain.Package10, TotalSessions: 10, UsedSessions: 10,
			ActivationCode: "WN-2222-BBBB", Activated: true,
			Payment: domain.PaymentPaid, PurchasedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}}
	m := &fakeMailer{}
	return NewService(repo, m, nopLogger{}), repo, m
}

func TestActivate(t *testing.T) {
	svc, repo, mails := newService()

	resp, err := svc.Activate(context.Background(), 1, "WN-1111-AAAA")
	require.NoError(t, err)

	assert.True(t, resp.Activated)
	assert.NotNil(t, resp.ActivatedAt)
	assert.True(t, repo.byID[1].Activated)

	require.Len(t, mails.sent, 1)
	assert.Equal(t, mailer.TemplatePackageActivated, mails.sent[0].Template)
}

func TestActivate_IdempotentSameCode(t *testing.T) {
	svc, _, mails := newService()

	resp, err := svc.Activate(context.Background(), 2, "WN-2222-BBBB")
	require.NoError(t, err)
	assert.True(t, resp.Activated)

	// повторная активация письмо не шлет
	assert.Empty(t, mails.sent)
}

func TestActivate_MismatchOnActivated(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Activate(context.Background(), 2, "WN-9999-XXXX")
	assert.ErrorIs(t, err, ErrAlreadyActivated)
}

func TestActivate_CodeMismatch(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Activate(context.Background(), 1, "WN-9999-XXXX")
	assert.ErrorIs(t, err, ErrCodeMismatch)
}

func TestActivate_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Activate(context.Background(), 42, "WN-1111-AAAA")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestGift_AddsToActivatedPackage(t *testing.T) {
	svc, repo, _ := newService()

	resp, err := svc.Gift(context.Background(), "nikos@example.com", 2)
	require.NoError(t, err)

	assert.Equal(t, 12, resp.TotalSessions)
	assert.Equal(t, 10, resp.UsedSessions)
	assert.Equal(t, 2, resp.RemainingSessions)
	assert.Equal(t, 12, repo.byID[2].TotalSessions)
}

func TestGift_RequiresActivatedPackage(t *testing.T) {
	svc, _, _ := newService()

	// у maria пакет не активирован
	_, err := svc.Gift(context.Background(), "maria@example.com", 1)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestGift_RejectsNonPositive(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Gift(context.Background(), "nikos@example.com", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetPayment(t *testing.T) {
	svc, repo, _ := newService()

	resp, err := svc.SetPayment(context.Background(), "maria@example.com", "paid")
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.Payment)
	assert.Equal(t, domain.PaymentPaid, repo.byID[1].Payment)
}

func TestSetPayment_InvalidStatus(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.SetPayment(context.Background(), "maria@example.com", "maybe")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetPayment_NoPackages(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.SetPayment(context.Background(), "ghost@example.com", "paid")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
