package create_booking

import (
	"time"

	"github.com/m04kA/WN-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name        string           // Имя клиента
	Surname     string           // Фамилия клиента
	Mobile      string           // Телефон клиента
	Email       string           // Email клиента (ключ клиента во всей системе)
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала слота (например, "18:00")
	Instructor  string           // Инструктор (опционально)
	Kind        string           // Тип занятия: single, package8/10/12, duo, individual
	PayInStudio bool             // Оплата на месте
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	Name        string           // Имя клиента
	Surname     string           // Фамилия клиента
	Email       string           // Email клиента
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	Instructor  string           // Инструктор
	Kind        string           // Тип занятия
	Status      string           // Статус бронирования
	Payment     string           // Статус оплаты

	// Для пакетных бронирований - состояние пакета после списания
	PackageID         *int64 // ID пакета
	SessionsRemaining *int   // Остаток занятий в пакете

	CreatedAt time.Time // Время создания
}
