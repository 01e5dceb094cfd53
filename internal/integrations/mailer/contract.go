package mailer

import "context"

// Sender общий интерфейс клиентов рассылки: боевой Client и заглушка
// DisabledClient для окружений с выключенным мейлером
type Sender interface {
	SendWithGracefulDegradation(ctx context.Context, msg Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
