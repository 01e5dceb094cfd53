package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/internal/service/availability"
)

// Дат по умолчанию в ответе - две недели кампании
const defaultDays = 14

// UseCase use case получения доступности слотов
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности.
// Снапшоты дней кэшируются с коротким TTL; закэшированный снапшот может
// отставать от журнала на время TTL, запись в журнал сбрасывает его раньше.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	days := req.Days
	if days == 0 {
		days = defaultDays
	}
	if days > maxDays {
		days = maxDays
	}

	// 2. Получаем текущее время и точку отсчета
	now := uc.timeProvider.Now()
	from := req.From
	if from.IsZero() {
		from = now
	}

	// 3. Получаем конфигурацию расписания
	sched, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Перебираем даты кампании. Нерабочие и заблокированные даты,
	// а также дни, в которых не осталось ни одного доступного слота,
	// в ответ не попадают и не входят в счетчик days.
	result := make([]domain.DayAvailability, 0, days)

	cursor := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < availability.MaxLookaheadDays && len(result) < days; i++ {
		date := cursor
		cursor = cursor.AddDate(0, 0, 1)

		if !availability.IsBookableDate(sched, date) {
			continue
		}

		day, err := uc.dayAvailability(ctx, sched, date, now)
		if err != nil {
			return nil, err
		}
		if !day.HasBookableSlot() {
			continue
		}

		result = append(result, *day)
	}

	uc.logger.Info("GetAvailability: returned %d days from %s", len(result), domain.DateKey(from))

	return &Response{Days: result}, nil
}

// dayAvailability возвращает снапшот дня: из кэша либо пересчитав из журнала.
// Ошибки кэша деградируют до промаха - доступность важнее кэша.
func (uc *UseCase) dayAvailability(
	ctx context.Context,
	sched *domain.StudioSchedule,
	date time.Time,
	now time.Time,
) (*domain.DayAvailability, error) {
	cached, err := uc.cache.Get(ctx, date)
	if err != nil {
		uc.logger.Warn("GetAvailability: cache get failed for %s: %v", domain.DateKey(date), err)
	}
	if cached != nil {
		return cached, nil
	}

	bookings, err := uc.bookingRepo.ListForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings for %s: %v", domain.DateKey(date), err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	slots, err := availability.BuildDaySlots(sched, date, now, bookings)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slots for %s: %v", domain.DateKey(date), err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	day := &domain.DayAvailability{Date: date, Slots: slots}

	if err := uc.cache.Set(ctx, day); err != nil {
		uc.logger.Warn("GetAvailability: cache set failed for %s: %v", domain.DateKey(date), err)
	}

	return day, nil
}
