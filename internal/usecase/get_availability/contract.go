package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.StudioSchedule, error)
}

// AvailabilityCache интерфейс кэша снапшотов доступности
type AvailabilityCache interface {
	Get(ctx context.Context, date time.Time) (*domain.DayAvailability, error)
	Set(ctx context.Context, day *domain.DayAvailability) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
