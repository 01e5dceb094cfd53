package purchase_package

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/WN-BookingService/internal/domain"
	waitlistRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/waitlist"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
)

// UseCase use case покупки пакета занятий
type UseCase struct {
	packageRepo  PackageRepository
	waitlistRepo WaitlistRepository
	customerRepo CustomerRepository
	mailerClient MailerClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	packageRepo PackageRepository,
	waitlistRepo WaitlistRepository,
	customerRepo CustomerRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		packageRepo:  packageRepo,
		waitlistRepo: waitlistRepo,
		customerRepo: customerRepo,
		mailerClient: mailerClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case покупки пакета.
// Пакет создается неактивированным: занятия доступны только после
// активации администратором по коду активации.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PurchasePackage: email=%s, type=%s", req.Email, req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PurchasePackage: validation failed: %v", err)
		return nil, err
	}

	packageType := domain.PackageType(req.Type)

	// 2. Проверяем черный список
	blocked, err := uc.customerRepo.IsBlocked(ctx, req.Email)
	if err != nil {
		uc.logger.Error("PurchasePackage: failed to check block list for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: failed to check block list: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("PurchasePackage: customer email=%s is blocked", req.Email)
		return nil, ErrCustomerBlocked
	}

	// Переменные для хранения результата
	var result *domain.PackageAccount
	bonusGranted := false

	// 3. Погашение кода приглашения и создание пакета - одна транзакция:
	// код не должен сгореть без созданного пакета
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		totalSessions := packageType.Sessions()

		// 3.1. Погашаем код приглашения из листа ожидания
		if req.RedemptionCode != nil {
			entry, err := uc.waitlistRepo.GetByCode(txCtx, *req.RedemptionCode)
			if err != nil {
				if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
					uc.logger.Warn("PurchasePackage: redemption code not found")
					return ErrRedemptionCodeNotFound
				}
				uc.logger.Error("PurchasePackage: failed to get waitlist entry: %v", err)
				return fmt.Errorf("%w: failed to get waitlist entry: %v", ErrInternal, err)
			}

			if !entry.CanRedeem() {
				uc.logger.Warn("PurchasePackage: redemption code for email=%s is not redeemable, status=%s",
					entry.Email, entry.Status)
				return ErrRedemptionCodeUsed
			}

			if err := uc.waitlistRepo.MarkRedeemed(txCtx, entry.ID); err != nil {
				uc.logger.Error("PurchasePackage: failed to mark code redeemed: %v", err)
				return fmt.Errorf("%w: failed to mark code redeemed: %v", ErrInternal, err)
			}

			totalSessions++
			bonusGranted = true
			uc.logger.Info("PurchasePackage: redemption bonus granted for email=%s", req.Email)
		}

		// 3.2. Создаем пакет с кодом активации
		account := &domain.PackageAccount{
			Name:           req.Name,
			Surname:        req.Surname,
			Mobile:         req.Mobile,
			Email:          req.Email,
			Type:           packageType,
			TotalSessions:  totalSessions,
			UsedSessions:   0,
			ActivationCode: newActivationCode(),
			Activated:      false,
			Payment:        domain.PaymentUnpaid,
			PurchasedAt:    uc.timeProvider.Now(),
		}

		created, err := uc.packageRepo.Create(txCtx, account)
		if err != nil {
			uc.logger.Error("PurchasePackage: failed to create package: %v", err)
			return fmt.Errorf("%w: failed to create package: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("PurchasePackage: successfully created package id=%d for email=%s", result.ID, result.Email)

	// 4. Отправляем письмо с кодом активации с graceful degradation
	msg := mailer.Message{
		To:       result.Email,
		Template: mailer.TemplatePackagePurchased,
		Params: map[string]string{
			"name":            result.Name,
			"package_type":    string(result.Type),
			"total_sessions":  strconv.Itoa(result.TotalSessions),
			"activation_code": result.ActivationCode,
		},
	}
	if err := uc.mailerClient.SendWithGracefulDegradation(ctx, msg); err != nil {
		uc.logger.Warn("PurchasePackage: purchase email not sent for package id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:             result.ID,
		Email:          result.Email,
		Type:           string(result.Type),
		TotalSessions:  result.TotalSessions,
		UsedSessions:   result.UsedSessions,
		ActivationCode: result.ActivationCode,
		Activated:      result.Activated,
		Payment:        string(result.Payment),
		PurchasedAt:    result.PurchasedAt,
		BonusGranted:   bonusGranted,
	}, nil
}

// newActivationCode генерирует человекочитаемый код активации вида WN-1A2B-3C4D
func newActivationCode() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s-%s", domain.ActivationCodePrefix, hex[:4], hex[4:8])
}
