// Package availability содержит канонический алгоритм расчёта доступности
// слотов. Это единственное место, где считается занятость мест: и выдача
// расписания, и проверка при создании бронирования используют эти функции.
package availability

import (
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
	"github.com/m04kA/WN-BookingService/pkg/types"
)

// BuildDaySlots вычисляет доступность всех слотов на дату.
//
// Алгоритм:
//  1. Для каждого слота из расписания суммируем места активных бронирований
//     (pending/confirmed/attended) с этим временем начала.
//  2. Если среди них есть индивидуальное занятие - слот занят целиком,
//     независимо от численной суммы.
//  3. Слот, начинающийся в прошлом или раньше, чем через BookingCutoff,
//     не бронируется, даже если численно свободен.
//
// now обязан быть приведён к таймзоне студии: времена слотов - локальные
// настенные значения без таймзоны, сравнение в UTC сдвигает окно отсечки.
// Дата без настроенных слотов даёт пустой список, это не ошибка.
func BuildDaySlots(
	sched *domain.StudioSchedule,
	date time.Time,
	now time.Time,
	bookings []*domain.Booking,
) ([]domain.SlotAvailability, error) {
	loc := sched.Location()
	localNow := now.In(loc)
	duration := sched.DurationForDate(date)

	slots := sched.SlotsForDate(date)
	result := make([]domain.SlotAvailability, 0, len(slots))

	for _, start := range slots {
		occupied, exclusive := countSeats(start, bookings)

		available := domain.SlotCapacity - occupied
		if available < 0 {
			available = 0
		}
		if exclusive {
			available = 0
		}

		end, err := start.AddMinutes(duration)
		if err != nil {
			return nil, err
		}

		slotStart, err := start.At(date, loc)
		if err != nil {
			return nil, err
		}

		result = append(result, domain.SlotAvailability{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: duration,
			SeatsOccupied:   occupied,
			SeatsAvailable:  available,
			IsPastOrTooSoon: slotStart.Sub(localNow) < domain.BookingCutoff,
			IsFull:          available <= 0,
		})
	}

	return result, nil
}

// countSeats суммирует занятые места слота и сообщает, есть ли в нём
// индивидуальное (эксклюзивное) бронирование
func countSeats(start types.TimeString, bookings []*domain.Booking) (occupied int, exclusive bool) {
	for _, b := range bookings {
		if b.StartTime != start {
			continue
		}
		if !b.CountsTowardCapacity() {
			continue
		}
		occupied += b.SeatsOccupied()
		if b.IsExclusive() {
			exclusive = true
		}
	}
	return occupied, exclusive
}

// FindSlot возвращает доступность конкретного слота или nil, если такого
// времени нет в расписании даты
func FindSlot(slots []domain.SlotAvailability, start string) *domain.SlotAvailability {
	for i := range slots {
		if slots[i].StartTime.String() == start {
			return &slots[i]
		}
	}
	return nil
}

// MaxLookaheadDays ограничивает перебор дат кампании. Окно кампании
// конечно, но при пустом расписании перебору нужен собственный предел.
const MaxLookaheadDays = 366

// IsBookableDate проверяет, что на дату в принципе можно бронировать:
// рабочий день, не заблокирована, внутри окна кампании
func IsBookableDate(sched *domain.StudioSchedule, date time.Time) bool {
	return sched.IsWorkingDay(date) && !sched.IsBlocked(date) && sched.Contains(date)
}
