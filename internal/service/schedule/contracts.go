package schedule

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.StudioSchedule, error)
	Save(ctx context.Context, sched *domain.StudioSchedule) (*domain.StudioSchedule, error)
}

// AvailabilityCache интерфейс кэша снапшотов доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
