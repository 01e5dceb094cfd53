package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WN-BookingService/internal/domain"
	customerRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/customer"
)

// Service сервис администрирования клиентов: черный список и удаление
type Service struct {
	bookingRepo  BookingRepository
	packageRepo  PackageRepository
	waitlistRepo WaitlistRepository
	customerRepo CustomerRepository
	cache        AvailabilityCache
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	waitlistRepo WaitlistRepository,
	customerRepo CustomerRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		packageRepo:  packageRepo,
		waitlistRepo: waitlistRepo,
		customerRepo: customerRepo,
		cache:        cache,
		txManager:    txManager,
		logger:       logger,
	}
}

// Block добавляет клиента в черный список. Существующие брони не трогаются,
// блокировка закрывает только создание новых.
func (s *Service) Block(ctx context.Context, email string, reason string) error {
	s.logger.Info("BlockCustomer: email=%s", email)

	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.customerRepo.Block(ctx, email, reason); err != nil {
		s.logger.Error("BlockCustomer: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockCustomer: email=%s blocked", email)
	return nil
}

// Unblock убирает клиента из черного списка
func (s *Service) Unblock(ctx context.Context, email string) error {
	s.logger.Info("UnblockCustomer: email=%s", email)

	if err := s.customerRepo.Unblock(ctx, email); err != nil {
		if errors.Is(err, customerRepo.ErrNotBlocked) {
			s.logger.Warn("UnblockCustomer: email=%s is not blocked", email)
			return ErrNotBlocked
		}
		s.logger.Error("UnblockCustomer: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockCustomer: email=%s unblocked", email)
	return nil
}

// IsBlocked проверяет, находится ли клиент в черном списке
func (s *Service) IsBlocked(ctx context.Context, email string) (bool, error) {
	blocked, err := s.customerRepo.IsBlocked(ctx, email)
	if err != nil {
		s.logger.Error("IsBlocked: repository error for email=%s: %v", email, err)
		return false, fmt.Errorf("%w: IsBlocked - repository error: %v", ErrInternal, err)
	}
	return blocked, nil
}

// Delete удаляет все данные клиента: брони, пакеты и запись листа ожидания,
// одной транзакцией. Запрос на забвение - физическое удаление, не пометка.
func (s *Service) Delete(ctx context.Context, email string) error {
	s.logger.Info("DeleteCustomer: email=%s", email)

	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	// Даты с бронями клиента понадобятся для сброса кэша после удаления
	bookings, err := s.bookingRepo.ListForCustomer(ctx, email)
	if err != nil {
		s.logger.Error("DeleteCustomer: failed to list bookings for email=%s: %v", email, err)
		return fmt.Errorf("%w: Delete - failed to list bookings: %v", ErrInternal, err)
	}

	var deletedBookings, deletedPackages int64

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		deletedBookings, err = s.bookingRepo.DeleteByEmail(txCtx, email)
		if err != nil {
			return fmt.Errorf("%w: Delete - failed to delete bookings: %v", ErrInternal, err)
		}

		deletedPackages, err = s.packageRepo.DeleteByEmail(txCtx, email)
		if err != nil {
			return fmt.Errorf("%w: Delete - failed to delete packages: %v", ErrInternal, err)
		}

		if _, err := s.waitlistRepo.DeleteByEmail(txCtx, email); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete waitlist entry: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("DeleteCustomer: transaction failed for email=%s: %v", email, err)
		return err
	}

	// Удаленные брони освободили места в своих датах
	seen := make(map[string]struct{})
	for _, b := range bookings {
		key := domain.DateKey(b.BookingDate)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if err := s.cache.Invalidate(ctx, b.BookingDate); err != nil {
			s.logger.Warn("DeleteCustomer: failed to invalidate cache for %s: %v", key, err)
		}
	}

	s.logger.Info("DeleteCustomer: email=%s deleted, %d bookings, %d packages",
		email, deletedBookings, deletedPackages)
	return nil
}
