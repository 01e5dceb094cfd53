package domain

import (
	"time"

	"github.com/m04kA/WN-BookingService/pkg/types"
)

// DateKey returns the canonical YYYY-MM-DD key for a calendar date
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// DayOverride replaces the default slot grid and session duration
// for a single calendar date
type DayOverride struct {
	Slots           []types.TimeString `json:"slots"`
	DurationMinutes int                `json:"durationMinutes"`
}

// StudioSchedule is the studio's bookable calendar: which weekdays the
// studio operates, the default slot grid, per-date overrides and blocked
// dates. Persisted as a single versioned record; read-only everywhere
// except the admin schedule endpoints.
type StudioSchedule struct {
	Version int64 `json:"version"`

	// Timezone is the studio's IANA timezone. Slot times are local
	// wall-clock values; the booking cutoff is evaluated in this zone.
	Timezone string `json:"timezone"`

	// Campaign window: first and last bookable date. Zero values mean
	// unbounded on that side.
	CampaignStart time.Time `json:"campaignStart"`
	CampaignEnd   time.Time `json:"campaignEnd"`

	WorkingDays            []time.Weekday     `json:"workingDays"`
	DefaultSlots           []types.TimeString `json:"defaultSlots"`
	DefaultDurationMinutes int                `json:"defaultDurationMinutes"`

	// DayOverrides and BlockedDates are keyed by DateKey
	DayOverrides map[string]DayOverride `json:"dayOverrides,omitempty"`
	BlockedDates []string               `json:"blockedDates,omitempty"`
}

// Location returns the studio's timezone, falling back to UTC on a bad name
func (s *StudioSchedule) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlotsForDate returns the ordered slot grid for a date: the day override
// if one exists, else the default slots
func (s *StudioSchedule) SlotsForDate(date time.Time) []types.TimeString {
	if override, ok := s.DayOverrides[DateKey(date)]; ok {
		return override.Slots
	}
	return s.DefaultSlots
}

// DurationForDate returns the session duration in minutes for a date
func (s *StudioSchedule) DurationForDate(date time.Time) int {
	if override, ok := s.DayOverrides[DateKey(date)]; ok && override.DurationMinutes > 0 {
		return override.DurationMinutes
	}
	return s.DefaultDurationMinutes
}

// EndTime returns start plus the date's session duration
func (s *StudioSchedule) EndTime(start types.TimeString, date time.Time) (types.TimeString, error) {
	return start.AddMinutes(s.DurationForDate(date))
}

// IsWorkingDay returns true if the studio operates on the date's weekday
func (s *StudioSchedule) IsWorkingDay(date time.Time) bool {
	weekday := date.Weekday()
	for _, d := range s.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsBlocked returns true if the date is blocked for booking
func (s *StudioSchedule) IsBlocked(date time.Time) bool {
	key := DateKey(date)
	for _, blocked := range s.BlockedDates {
		if blocked == key {
			return true
		}
	}
	return false
}

// Contains returns true if the date falls inside the campaign window
func (s *StudioSchedule) Contains(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if !s.CampaignStart.IsZero() {
		start := time.Date(s.CampaignStart.Year(), s.CampaignStart.Month(), s.CampaignStart.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(start) {
			return false
		}
	}
	if !s.CampaignEnd.IsZero() {
		end := time.Date(s.CampaignEnd.Year(), s.CampaignEnd.Month(), s.CampaignEnd.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(end) {
			return false
		}
	}
	return true
}

// BlockDate adds a date to the blocked set. Existing bookings on that date
// are untouched; the admin handles them manually.
func (s *StudioSchedule) BlockDate(date time.Time) {
	if s.IsBlocked(date) {
		return
	}
	s.BlockedDates = append(s.BlockedDates, DateKey(date))
}

// UnblockDate removes a date from the blocked set
func (s *StudioSchedule) UnblockDate(date time.Time) {
	key := DateKey(date)
	kept := s.BlockedDates[:0]
	for _, blocked := range s.BlockedDates {
		if blocked != key {
			kept = append(kept, blocked)
		}
	}
	s.BlockedDates = kept
}
