package bookings

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListForCustomer(ctx context.Context, email string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, payment domain.PaymentStatus) error
	SetPayment(ctx context.Context, id int64, payment domain.PaymentStatus) error
}

// AvailabilityCache интерфейс кэша снапшотов доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
