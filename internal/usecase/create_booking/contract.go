package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// PackageRepository интерфейс репозитория пакетов занятий
type PackageRepository interface {
	GetActiveByEmail(ctx context.Context, email string) (*domain.PackageAccount, error)
	Debit(ctx context.Context, id int64) (*domain.PackageAccount, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.StudioSchedule, error)
}

// CustomerRepository интерфейс репозитория черного списка клиентов
type CustomerRepository interface {
	IsBlocked(ctx context.Context, email string) (bool, error)
}

// AvailabilityCache интерфейс кэша снапшотов доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// MailerClient интерфейс клиента сервиса рассылки
type MailerClient interface {
	SendWithGracefulDegradation(ctx context.Context, msg mailer.Message) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
