package update_reservation_status

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ChangeStatus(ctx context.Context, id int64, newStatus string) (*models.BookingResponse, error)
	MarkAttendedAndPaid(ctx context.Context, id int64) (*models.BookingResponse, error)
	SetPayment(ctx context.Context, id int64, payment string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
