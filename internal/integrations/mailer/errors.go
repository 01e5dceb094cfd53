package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса рассылки
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Сервис рассылки недоступен - операция продолжается без письма.
	ErrServiceDegraded = errors.New("mailer unavailable: graceful degradation applied")
)
