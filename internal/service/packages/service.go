package packages

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/WN-BookingService/internal/domain"
	pkgRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/pkgaccount"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	"github.com/m04kA/WN-BookingService/internal/service/packages/models"
)

// Service сервис для работы с пакетами занятий
type Service struct {
	packageRepo  PackageRepository
	mailerClient MailerClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(
	packageRepo PackageRepository,
	mailerClient MailerClient,
	logger Logger,
) *Service {
	return &Service{
		packageRepo:  packageRepo,
		mailerClient: mailerClient,
		logger:       logger,
	}
}

// GetByID получает пакет по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PackageResponse, error) {
	s.logger.Info("GetByID: fetching package id=%d", id)

	account, err := s.getPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPackage(account), nil
}

// ListByEmail получает все пакеты клиента
func (s *Service) ListByEmail(ctx context.Context, email string) (*models.PackageListResponse, error) {
	s.logger.Info("ListByEmail: fetching packages for email=%s", email)

	accounts, err := s.packageRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("ListByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: ListByEmail - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackageList(accounts), nil
}

// Activate активирует пакет по коду активации.
// Повторная активация тем же кодом - no-op; чужой код на уже
// активированном пакете - ошибка.
func (s *Service) Activate(ctx context.Context, id int64, code string) (*models.PackageResponse, error) {
	s.logger.Info("Activate: package id=%d", id)

	if code == "" {
		return nil, fmt.Errorf("%w: activation code is required", ErrInvalidInput)
	}

	account, err := s.getPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	if account.ActivationCode != code {
		if account.Activated {
			s.logger.Warn("Activate: package id=%d already activated, code mismatch", id)
			return nil, ErrAlreadyActivated
		}
		s.logger.Warn("Activate: code mismatch for package id=%d", id)
		return nil, ErrCodeMismatch
	}

	if account.Activated {
		s.logger.Info("Activate: package id=%d already activated, no-op", id)
		return models.FromDomainPackage(account), nil
	}

	if err := s.packageRepo.Activate(ctx, id); err != nil {
		s.logger.Error("Activate: failed to activate package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, err)
	}

	activated, err := s.getPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Activate: package id=%d activated for email=%s", id, activated.Email)

	// Письмо об активации вторично, ошибки не пробрасываем
	msg := mailer.Message{
		To:       activated.Email,
		Template: mailer.TemplatePackageActivated,
		Params: map[string]string{
			"name":           activated.Name,
			"package_type":   string(activated.Type),
			"total_sessions": strconv.Itoa(activated.TotalSessions),
		},
	}
	if err := s.mailerClient.SendWithGracefulDegradation(ctx, msg); err != nil {
		s.logger.Warn("Activate: activation email not sent for package id=%d: %v", id, err)
	}

	return models.FromDomainPackage(activated), nil
}

// Gift добавляет клиенту extra занятий в последний активированный пакет.
// Подарок только увеличивает общее число занятий.
func (s *Service) Gift(ctx context.Context, email string, extra int) (*models.PackageResponse, error) {
	s.logger.Info("Gift: email=%s, extra=%d", email, extra)

	if extra <= 0 {
		return nil, fmt.Errorf("%w: extra sessions must be positive", ErrInvalidInput)
	}

	account, err := s.latestActivated(ctx, email)
	if err != nil {
		return nil, err
	}

	gifted, err := s.packageRepo.Gift(ctx, account.ID, extra)
	if err != nil {
		if errors.Is(err, pkgRepo.ErrAccountNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Gift: failed to gift sessions to package id=%d: %v", account.ID, err)
		return nil, fmt.Errorf("%w: Gift - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Gift: package id=%d now has %d total sessions", gifted.ID, gifted.TotalSessions)
	return models.FromDomainPackage(gifted), nil
}

// SetPayment обновляет статус оплаты последнего пакета клиента
func (s *Service) SetPayment(ctx context.Context, email string, payment string) (*models.PackageResponse, error) {
	s.logger.Info("SetPayment: email=%s -> payment=%s", email, payment)

	paymentStatus := domain.PaymentStatus(payment)
	if !paymentStatus.Valid() {
		s.logger.Warn("SetPayment: invalid payment status=%s", payment)
		return nil, fmt.Errorf("%w: invalid payment status %q", ErrInvalidInput, payment)
	}

	account, err := s.latest(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.packageRepo.SetPayment(ctx, account.ID, paymentStatus); err != nil {
		if errors.Is(err, pkgRepo.ErrAccountNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("SetPayment: failed to update package id=%d: %v", account.ID, err)
		return nil, fmt.Errorf("%w: SetPayment - repository error: %v", ErrInternal, err)
	}

	account.Payment = paymentStatus

	s.logger.Info("SetPayment: package id=%d payment is now %s", account.ID, paymentStatus)
	return models.FromDomainPackage(account), nil
}

// getPackage общая выборка пакета с маппингом ошибок репозитория
func (s *Service) getPackage(ctx context.Context, id int64) (*domain.PackageAccount, error) {
	account, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgRepo.ErrAccountNotFound) {
			s.logger.Warn("package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return account, nil
}

// latest возвращает самый свежий пакет клиента
func (s *Service) latest(ctx context.Context, email string) (*domain.PackageAccount, error) {
	accounts, err := s.packageRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("latest: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	if len(accounts) == 0 {
		s.logger.Warn("latest: no packages for email=%s", email)
		return nil, ErrPackageNotFound
	}
	return accounts[0], nil
}

// latestActivated возвращает самый свежий активированный пакет клиента
func (s *Service) latestActivated(ctx context.Context, email string) (*domain.PackageAccount, error) {
	accounts, err := s.packageRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("latestActivated: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	for _, account := range accounts {
		if account.Activated {
			return account, nil
		}
	}
	s.logger.Warn("latestActivated: no activated packages for email=%s", email)
	return nil, ErrPackageNotFound
}
