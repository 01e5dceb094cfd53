package get_availability

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// Максимум дат в одном ответе
const maxDays = 31

// Request модель запроса доступности
type Request struct {
	From time.Time // Первая интересующая дата; нулевое значение - сегодня
	Days int       // Сколько доступных дат вернуть; 0 - значение по умолчанию
}

// Response модель ответа со снапшотами доступности по датам
type Response struct {
	Days []domain.DayAvailability
}
