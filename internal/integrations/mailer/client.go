package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом почтовой рассылки
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса рассылки
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо через сервис рассылки
func (c *Client) Send(ctx context.Context, msg Message) error {
	url := fmt.Sprintf("%s/internal/v1/messages", c.baseURL)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendWithGracefulDegradation отправляет письмо с graceful degradation.
// Письма вторичны относительно самой брони: при недоступности сервиса
// рассылки возвращается ErrServiceDegraded, операция продолжается без письма.
func (c *Client) SendWithGracefulDegradation(ctx context.Context, msg Message) error {
	c.log.Info("Sending %s email to %s", msg.Template, msg.To)

	if err := c.Send(ctx, msg); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Mailer unavailable, applying graceful degradation for to=%s template=%s: %v", msg.To, msg.Template, err)
		return fmt.Errorf("%w: to=%s, error=%v", ErrServiceDegraded, msg.To, err)
	}

	c.log.Info("Successfully sent %s email to %s", msg.Template, msg.To)
	return nil
}
