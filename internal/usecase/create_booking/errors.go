package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCustomerBlocked возвращается, когда клиент находится в черном списке
	ErrCustomerBlocked = errors.New("create_booking: customer is blocked")

	// ErrDateNotBookable возвращается, когда дата вне расписания студии:
	// нерабочий день или вне окна кампании
	ErrDateNotBookable = errors.New("create_booking: date is not bookable")

	// ErrDateBlocked возвращается, когда дата закрыта администратором
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrSlotNotFound возвращается, когда времени нет в расписании даты
	ErrSlotNotFound = errors.New("create_booking: slot not found in schedule")

	// ErrSlotFull возвращается, когда в слоте недостаточно свободных мест
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrTooLateToBook возвращается, когда до начала слота меньше окна отсечки
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrNoActivePackage возвращается при пакетном бронировании без активированного пакета
	ErrNoActivePackage = errors.New("create_booking: no active package for customer")

	// ErrNoSessionsRemaining возвращается, когда в пакете не осталось занятий
	ErrNoSessionsRemaining = errors.New("create_booking: no sessions remaining in package")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
