package mailer

import "context"

// DisabledClient заглушка клиента рассылки. Используется, когда мейлер
// выключен конфигурацией: операции проходят как обычно, письма не уходят.
type DisabledClient struct {
	log Logger
}

// NewDisabledClient создает заглушку клиента рассылки
func NewDisabledClient(log Logger) *DisabledClient {
	return &DisabledClient{log: log}
}

// SendWithGracefulDegradation пропускает отправку письма
func (c *DisabledClient) SendWithGracefulDegradation(_ context.Context, msg Message) error {
	c.log.Debug("Mailer disabled, skipping %s email to %s", msg.Template, msg.To)
	return nil
}
