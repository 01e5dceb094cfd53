package get_waitlist

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/waitlist/models"
)

type WaitlistService interface {
	List(ctx context.Context) (*models.WaitlistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
