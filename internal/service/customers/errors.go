package customers

import "errors"

var (
	// ErrNotBlocked возвращается при разблокировке клиента, который не заблокирован
	ErrNotBlocked = errors.New("customers service: customer is not blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("customers service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers service: internal error")
)
