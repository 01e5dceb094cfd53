package domain

import "time"

// Capacity and booking rules
const (
	// SlotCapacity fixed number of seats per slot
	SlotCapacity = 4

	// BookingCutoff a slot starting within this window (or already past)
	// is not bookable
	BookingCutoff = 5 * time.Minute
)

// Default schedule values
const (
	DefaultSessionDurationMinutes = 50
	DefaultTimezone               = "Europe/Athens"
)

// Activation code format: WN-XXXX-XXXX
const (
	ActivationCodePrefix = "WN"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength       = 100
	MaxInstructorLength = 100
)

// CountedStatuses статусы, занимающие места в слоте.
// Используется при подсчёте доступных мест.
var CountedStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusAttended,
}

// InactiveStatuses статусы, не занимающие места в слоте
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}
