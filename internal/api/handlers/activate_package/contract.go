package activate_package

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/packages/models"
)

type PackageService interface {
	Activate(ctx context.Context, id int64, code string) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
