package get_bookings

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
