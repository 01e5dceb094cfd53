package waitlist

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/internal/integrations/mailer"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	GetByEmail(ctx context.Context, email string) (*domain.WaitlistEntry, error)
	List(ctx context.Context) ([]*domain.WaitlistEntry, error)
	MarkInvited(ctx context.Context, id int64) error
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
