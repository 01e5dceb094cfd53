package domain

import (
	"time"

	"github.com/m04kA/WN-BookingService/pkg/types"
)

// SlotAvailability is the computed state of one slot on one date.
// Tagged for the cached snapshot representation.
type SlotAvailability struct {
	StartTime       types.TimeString `json:"start_time"`
	EndTime         types.TimeString `json:"end_time"`
	DurationMinutes int              `json:"duration_minutes"`
	SeatsOccupied   int              `json:"seats_occupied"`
	SeatsAvailable  int              `json:"seats_available"`
	IsPastOrTooSoon bool             `json:"is_past_or_too_soon"`
	IsFull          bool             `json:"is_full"`
}

// CanFit returns true if a booking needing seats seats can be placed now
func (s *SlotAvailability) CanFit(seats int) bool {
	return !s.IsPastOrTooSoon && s.SeatsAvailable >= seats
}

// IsBookable returns true if at least one seat can still be booked
func (s *SlotAvailability) IsBookable() bool {
	return s.CanFit(1)
}

// DayAvailability is the availability snapshot for one calendar date
type DayAvailability struct {
	Date  time.Time          `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}

// HasBookableSlot returns true if any slot of the day is still bookable
func (d *DayAvailability) HasBookableSlot() bool {
	for i := range d.Slots {
		if d.Slots[i].IsBookable() {
			return true
		}
	}
	return false
}
