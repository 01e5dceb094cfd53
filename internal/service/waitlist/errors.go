package waitlist

import "errors"

var (
	// ErrAlreadyRedeemed возвращается при приглашении клиента, уже
	// погасившего свой код
	ErrAlreadyRedeemed = errors.New("waitlist service: code already redeemed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("waitlist service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("waitlist service: internal error")
)
