package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatWeights(t *testing.T) {
	assert.Equal(t, 1, KindSingle.SeatsOccupied())
	assert.Equal(t, 1, KindPackage8.SeatsOccupied())
	assert.Equal(t, 1, KindPackage10.SeatsOccupied())
	assert.Equal(t, 1, KindPackage12.SeatsOccupied())
	assert.Equal(t, 2, KindDuo.SeatsOccupied())
	assert.Equal(t, SlotCapacity, KindIndividual.SeatsOccupied())

	assert.True(t, KindIndividual.IsExclusive())
	assert.False(t, KindDuo.IsExclusive())
	assert.False(t, BookingKind("trio").Valid())
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	// вперёд
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusAttended))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusNoShow))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))

	// вбок: исправление итога посещения
	assert.True(t, StatusAttended.CanTransitionTo(StatusNoShow))
	assert.True(t, StatusNoShow.CanTransitionTo(StatusAttended))

	// отменённое бронирование не воскресает
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusAttended))

	// назад в pending нельзя
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
}

func TestBooking_CountsTowardCapacity(t *testing.T) {
	b := &Booking{Kind: KindSingle}

	for _, status := range CountedStatuses {
		b.Status = status
		assert.True(t, b.CountsTowardCapacity(), "status %s", status)
	}
	for _, status := range InactiveStatuses {
		b.Status = status
		assert.False(t, b.CountsTowardCapacity(), "status %s", status)
	}
}

func TestPackageAccount_RemainingSessions(t *testing.T) {
	p := &PackageAccount{Type: Package8, TotalSessions: 8, UsedSessions: 3}
	assert.Equal(t, 5, p.RemainingSessions())
	assert.False(t, p.IsExhausted())

	p.UsedSessions = 8
	assert.Equal(t, 0, p.RemainingSessions())
	assert.True(t, p.IsExhausted())

	p.Activated = true
	assert.False(t, p.CanBook())

	p.UsedSessions = 7
	assert.True(t, p.CanBook())
}

func TestPackageType_Sessions(t *testing.T) {
	assert.Equal(t, 1, PackageSingle.Sessions())
	assert.Equal(t, 8, Package8.Sessions())
	assert.Equal(t, 10, Package10.Sessions())
	assert.Equal(t, 12, Package12.Sessions())
	assert.False(t, PackageType("package20").Valid())

	assert.Equal(t, KindPackage10, Package10.BookingKind())
	assert.Equal(t, KindSingle, PackageSingle.BookingKind())
}
