package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда конфигурация расписания не найдена
	ErrScheduleNotFound = errors.New("schedule service: schedule not found")

	// ErrVersionConflict возвращается при конкурентном изменении расписания
	ErrVersionConflict = errors.New("schedule service: schedule was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
