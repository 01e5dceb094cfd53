package domain

import (
	"time"

	"github.com/m04kA/WN-BookingService/pkg/types"
)

// BookingKind determines how many of a slot's seats a booking consumes
type BookingKind string

const (
	KindSingle     BookingKind = "single"
	KindPackage8   BookingKind = "package8"
	KindPackage10  BookingKind = "package10"
	KindPackage12  BookingKind = "package12"
	KindDuo        BookingKind = "duo"
	KindIndividual BookingKind = "individual"
)

// SeatWeights maps each booking kind to the number of seats it occupies.
// An individual (private) session takes the whole slot.
var SeatWeights = map[BookingKind]int{
	KindSingle:     1,
	KindPackage8:   1,
	KindPackage10:  1,
	KindPackage12:  1,
	KindDuo:        2,
	KindIndividual: SlotCapacity,
}

// Valid returns true if the kind is a known booking kind
func (k BookingKind) Valid() bool {
	_, ok := SeatWeights[k]
	return ok
}

// SeatsOccupied returns the seat weight of the kind
func (k BookingKind) SeatsOccupied() int {
	return SeatWeights[k]
}

// IsExclusive returns true if the kind takes the slot exclusively
func (k BookingKind) IsExclusive() bool {
	return k == KindIndividual
}

// IsPackage returns true if the kind is backed by a session package
func (k BookingKind) IsPackage() bool {
	return k == KindPackage8 || k == KindPackage10 || k == KindPackage12
}

// ReservationStatus represents the attendance lifecycle of a booking
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusAttended  ReservationStatus = "attended"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Valid returns true if the status is a known reservation status
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusAttended, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next.
// Transitions only move forward or sideways; a cancelled booking
// is never resurrected.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}

	switch s {
	case StatusPending:
		return next != StatusPending
	case StatusConfirmed:
		return next == StatusAttended || next == StatusCancelled || next == StatusNoShow
	case StatusAttended:
		return next == StatusNoShow
	case StatusNoShow:
		return next == StatusAttended
	case StatusCancelled:
		return false
	}
	return false
}

// PaymentStatus is tracked independently of the reservation status
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// Valid returns true if the status is a known payment status
func (p PaymentStatus) Valid() bool {
	return p == PaymentPaid || p == PaymentUnpaid
}

// Booking represents one reservation in the ledger
type Booking struct {
	ID int64

	// Customer identity; Email is the customer key across the system
	Name    string
	Surname string
	Mobile  string
	Email   string

	BookingDate time.Time
	StartTime   types.TimeString
	Instructor  string

	Kind      BookingKind
	PackageID *int64 // set when the booking debits a package account

	Status      ReservationStatus
	Payment     PaymentStatus
	PayInStudio bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeatsOccupied returns the number of seats the booking consumes
func (b *Booking) SeatsOccupied() int {
	return b.Kind.SeatsOccupied()
}

// CountsTowardCapacity returns true if the booking holds seats in its slot.
// Cancelled bookings free their seats; a no-show is settled after the fact
// and is excluded from the live availability computation.
func (b *Booking) CountsTowardCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusAttended
}

// IsExclusive returns true if the booking takes its slot exclusively
func (b *Booking) IsExclusive() bool {
	return b.Kind.IsExclusive()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date            *time.Time         // Конкретная дата (опционально)
	Email           *string            // Фильтр по клиенту (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и no-show
}
