package customers

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListForCustomer(ctx context.Context, email string) ([]*domain.Booking, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// PackageRepository интерфейс репозитория пакетов занятий
type PackageRepository interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// CustomerRepository интерфейс репозитория черного списка клиентов
type CustomerRepository interface {
	Block(ctx context.Context, email string, reason string) error
	Unblock(ctx context.Context, email string) error
	IsBlocked(ctx context.Context, email string) (bool, error)
}

// AvailabilityCache интерфейс кэша снапшотов доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
