package get_availability

import (
	"github.com/m04kA/WN-BookingService/internal/domain"
	getAvailability "github.com/m04kA/WN-BookingService/internal/usecase/get_availability"
)

// SlotResponse один слот в снапшоте доступности
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	SeatsOccupied   int    `json:"seatsOccupied"`
	SeatsAvailable  int    `json:"seatsAvailable"`
	IsPastOrTooSoon bool   `json:"isPastOrTooSoon"`
	IsFull          bool   `json:"isFull"`
}

// DayResponse доступность одной даты
type DayResponse struct {
	Date  string         `json:"date"` // "2026-01-30"
	Slots []SlotResponse `json:"slots"`
}

// AvailabilityResponse HTTP ответ со снапшотами доступности
type AvailabilityResponse struct {
	Days []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime:       slot.StartTime.String(),
				EndTime:         slot.EndTime.String(),
				DurationMinutes: slot.DurationMinutes,
				SeatsOccupied:   slot.SeatsOccupied,
				SeatsAvailable:  slot.SeatsAvailable,
				IsPastOrTooSoon: slot.IsPastOrTooSoon,
				IsFull:          slot.IsFull,
			})
		}
		days = append(days, DayResponse{
			Date:  domain.DateKey(day.Date),
			Slots: slots,
		})
	}
	return &AvailabilityResponse{Days: days}
}
