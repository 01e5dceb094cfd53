package get_customer_bookings

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListForCustomer(ctx context.Context, email string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
