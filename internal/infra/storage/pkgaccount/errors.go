package pkgaccount

import "errors"

var (
	// ErrAccountNotFound возвращается, когда пакет занятий не найден
	ErrAccountNotFound = errors.New("pkgaccount.repository: package account not found")

	// ErrNoSessionsRemaining возвращается, когда в пакете не осталось занятий для списания
	ErrNoSessionsRemaining = errors.New("pkgaccount.repository: no sessions remaining")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pkgaccount.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pkgaccount.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pkgaccount.repository: failed to scan row")
)
