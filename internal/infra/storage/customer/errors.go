package customer

import "errors"

var (
	// ErrNotBlocked возвращается при разблокировке клиента, который не заблокирован
	ErrNotBlocked = errors.New("customer.repository: customer is not blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")
)
