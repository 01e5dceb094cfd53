package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда конфигурация расписания не найдена
	ErrScheduleNotFound = errors.New("schedule.repository: schedule config not found")

	// ErrVersionConflict возвращается при конкурентном изменении конфигурации
	ErrVersionConflict = errors.New("schedule.repository: schedule version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrMarshalConfig возвращается при ошибке сериализации конфигурации
	ErrMarshalConfig = errors.New("schedule.repository: failed to marshal config")

	// ErrUnmarshalConfig возвращается при ошибке десериализации конфигурации
	ErrUnmarshalConfig = errors.New("schedule.repository: failed to unmarshal config")
)
