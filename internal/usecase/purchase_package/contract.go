package purchase_package

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
)

// PackageRepository интерфейс репозитория пакетов занятий
type PackageRepository interface {
	Create(ctx context.Context, account *domain.PackageAccount) (*domain.PackageAccount, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.WaitlistEntry, error)
	MarkRedeemed(ctx context.Context, id int64) error
}

// CustomerRepository интерфейс репозитория черного списка клиентов
type CustomerRepository interface {
	IsBlocked(ctx context.Context, email string) (bool, error)
}

// MailerClient интерфейс клиента сервиса рассылки
type MailerClient interface {
	SendWithGracefulDegradation(ctx context.Context, msg mailer.Message) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
