package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/WN-BookingService/internal/domain"
	waitlistRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/waitlist"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	"github.com/m04kA/WN-BookingService/internal/service/waitlist/models"
)

// Service сервис листа ожидания
type Service struct {
	waitlistRepo WaitlistRepository
	mailerClient MailerClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(
	waitlistRepo WaitlistRepository,
	mailerClient MailerClient,
	logger Logger,
) *Service {
	return &Service{
		waitlistRepo: waitlistRepo,
		mailerClient: mailerClient,
		logger:       logger,
	}
}

// List возвращает весь лист ожидания
func (s *Service) List(ctx context.Context) (*models.WaitlistResponse, error) {
	s.logger.Info("ListWaitlist: fetching waitlist")

	entries, err := s.waitlistRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListWaitlist: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntryList(entries), nil
}

// Invite выдает клиенту код приглашения и отправляет письмо.
// Если клиента нет в листе ожидания, запись создается; повторное
// приглашение отправляет письмо с тем же кодом еще раз.
func (s *Service) Invite(ctx context.Context, email string) (*models.WaitlistEntryResponse, error) {
	s.logger.Info("InviteFromWaitlist: email=%s", email)

	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	entry, err := s.waitlistRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			s.logger.Error("InviteFromWaitlist: repository error for email=%s: %v", email, err)
			return nil, fmt.Errorf("%w: Invite - repository error: %v", ErrInternal, err)
		}

		entry, err = s.waitlistRepo.Create(ctx, &domain.WaitlistEntry{
			Email:          email,
			RedemptionCode: newRedemptionCode(),
			Status:         domain.WaitlistPending,
		})
		if err != nil {
			s.logger.Error("InviteFromWaitlist: failed to create entry for email=%s: %v", email, err)
			return nil, fmt.Errorf("%w: Invite - failed to create entry: %v", ErrInternal, err)
		}
	}

	if entry.Status == domain.WaitlistRedeemed {
		s.logger.Warn("InviteFromWaitlist: email=%s already redeemed", email)
		return nil, ErrAlreadyRedeemed
	}

	if entry.Status == domain.WaitlistPending {
		if err := s.waitlistRepo.MarkInvited(ctx, entry.ID); err != nil {
			s.logger.Error("InviteFromWaitlist: failed to mark invited id=%d: %v", entry.ID, err)
			return nil, fmt.Errorf("%w: Invite - failed to mark invited: %v", ErrInternal, err)
		}
		entry.Status = domain.WaitlistInvited
	}

	msg := mailer.Message{
		To:       entry.Email,
		Template: mailer.TemplateWaitlistInvite,
		Params: map[string]string{
			"redemption_code": entry.RedemptionCode,
		},
	}
	if err := s.mailerClient.SendWithGracefulDegradation(ctx, msg); err != nil {
		s.logger.Warn("InviteFromWaitlist: invite email not sent for email=%s: %v", email, err)
	}

	s.logger.Info("InviteFromWaitlist: email=%s invited", email)
	return models.FromDomainEntry(entry), nil
}

// newRedemptionCode генерирует код приглашения вида WN-1A2B-3C4D
func newRedemptionCode() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s-%s", domain.ActivationCodePrefix, hex[:4], hex[4:8])
}
