package waitlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись листа ожидания не найдена
	ErrEntryNotFound = errors.New("waitlist.repository: waitlist entry not found")

	// ErrAlreadyOnWaitlist возвращается при повторной записи того же email
	ErrAlreadyOnWaitlist = errors.New("waitlist.repository: email already on waitlist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("waitlist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("waitlist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("waitlist.repository: failed to scan row")
)
