package packages

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
)

// PackageRepository интерфейс репозитория пакетов занятий
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PackageAccount, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.PackageAccount, error)
	Activate(ctx context.Context, id int64) error
	Gift(ctx context.Context, id int64, extra int) (*domain.PackageAccount, error)
	SetPayment(ctx context.Context, id int64, payment domain.PaymentStatus) error
}

// MailerClient интерфейс клиента сервиса рассылки
type MailerClient interface {
	SendWithGracefulDegradation(ctx context.Context, msg mailer.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
