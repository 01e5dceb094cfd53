package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/WN-BookingService/internal/service/schedule/models"
)

// Снапшоты стольких дней вперед сбрасываются после изменения расписания
const invalidateHorizonDays = 31

// Service сервис для работы с конфигурацией расписания студии
type Service struct {
	scheduleRepo ScheduleRepository
	cache        AvailabilityCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	cache AvailabilityCache,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Get возвращает текущую конфигурацию расписания
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule config")

	sched, err := s.getSchedule(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSchedule(sched), nil
}

// Save заменяет конфигурацию расписания целиком.
// Версия в запросе должна совпадать с текущей - администраторы не могут
// молча затереть изменения друг друга.
func (s *Service) Save(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("SaveSchedule: saving schedule config version=%d", req.Version)

	sched, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("SaveSchedule: bad request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateSchedule(sched); err != nil {
		s.logger.Warn("SaveSchedule: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Save(ctx, sched)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrVersionConflict) {
			s.logger.Warn("SaveSchedule: version conflict on version=%d", req.Version)
			return nil, ErrVersionConflict
		}
		s.logger.Error("SaveSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.invalidateHorizon(ctx)

	s.logger.Info("SaveSchedule: saved schedule config version=%d", saved.Version)
	return models.FromDomainSchedule(saved), nil
}

// BlockDate закрывает дату для бронирования. Существующие брони на дату
// не трогаются - администратор разбирается с ними вручную.
func (s *Service) BlockDate(ctx context.Context, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("BlockDate: blocking %s", domain.DateKey(date))
	return s.mutateBlockedDates(ctx, date, func(sched *domain.StudioSchedule) {
		sched.BlockDate(date)
	})
}

// UnblockDate открывает дату для бронирования
func (s *Service) UnblockDate(ctx context.Context, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("UnblockDate: unblocking %s", domain.DateKey(date))
	return s.mutateBlockedDates(ctx, date, func(sched *domain.StudioSchedule) {
		sched.UnblockDate(date)
	})
}

// mutateBlockedDates применяет изменение списка заблокированных дат
// поверх свежей версии конфигурации
func (s *Service) mutateBlockedDates(
	ctx context.Context,
	date time.Time,
	mutate func(*domain.StudioSchedule),
) (*models.ScheduleResponse, error) {
	sched, err := s.getSchedule(ctx)
	if err != nil {
		return nil, err
	}

	mutate(sched)

	saved, err := s.scheduleRepo.Save(ctx, sched)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrVersionConflict) {
			return nil, ErrVersionConflict
		}
		s.logger.Error("mutateBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Invalidate(ctx, date); err != nil {
		s.logger.Warn("mutateBlockedDates: failed to invalidate cache for %s: %v", domain.DateKey(date), err)
	}

	return models.FromDomainSchedule(saved), nil
}

// invalidateHorizon сбрасывает снапшоты ближайших дат после полной замены
// конфигурации. Ошибки кэша не критичны, снапшоты истекут по TTL.
func (s *Service) invalidateHorizon(ctx context.Context) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < invalidateHorizonDays; i++ {
		if err := s.cache.Invalidate(ctx, day); err != nil {
			s.logger.Warn("SaveSchedule: failed to invalidate cache for %s: %v", domain.DateKey(day), err)
			return
		}
		day = day.AddDate(0, 0, 1)
	}
}

// getSchedule общая выборка конфигурации с маппингом ошибок репозитория
func (s *Service) getSchedule(ctx context.Context) (*domain.StudioSchedule, error) {
	sched, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("schedule config not found")
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return sched, nil
}

// validateSchedule проверяет согласованность конфигурации
func validateSchedule(sched *domain.StudioSchedule) error {
	if sched.Timezone != "" {
		if _, err := time.LoadLocation(sched.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, sched.Timezone)
		}
	}

	if sched.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: default duration must be positive", ErrInvalidInput)
	}

	for _, d := range sched.WorkingDays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: invalid weekday %d", ErrInvalidInput, d)
		}
	}

	for _, slot := range sched.DefaultSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot %q", ErrInvalidInput, slot)
		}
	}

	for key, override := range sched.DayOverrides {
		if _, err := time.Parse(domain.DateFormat, key); err != nil {
			return fmt.Errorf("%w: invalid override date %q", ErrInvalidInput, key)
		}
		for _, slot := range override.Slots {
			if err := slot.Validate(); err != nil {
				return fmt.Errorf("%w: invalid slot %q for %s", ErrInvalidInput, slot, key)
			}
		}
	}

	for _, blocked := range sched.BlockedDates {
		if _, err := time.Parse(domain.DateFormat, blocked); err != nil {
			return fmt.Errorf("%w: invalid blocked date %q", ErrInvalidInput, blocked)
		}
	}

	if !sched.CampaignStart.IsZero() && !sched.CampaignEnd.IsZero() && sched.CampaignEnd.Before(sched.CampaignStart) {
		return fmt.Errorf("%w: campaign end before start", ErrInvalidInput)
	}

	return nil
}
