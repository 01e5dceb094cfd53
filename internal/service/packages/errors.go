package packages

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("packages service: package not found")

	// ErrCodeMismatch возвращается, когда код активации не подходит к пакету
	ErrCodeMismatch = errors.New("packages service: activation code mismatch")

	// ErrAlreadyActivated возвращается при попытке активировать чужим кодом
	// уже активированный пакет
	ErrAlreadyActivated = errors.New("packages service: package already activated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("packages service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("packages service: internal error")
)
