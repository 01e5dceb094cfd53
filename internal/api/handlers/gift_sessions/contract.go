package gift_sessions

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/packages/models"
)

type PackageService interface {
	Gift(ctx context.Context, email string, extra int) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
