package set_user_payment

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/packages/models"
)

type PackageService interface {
	SetPayment(ctx context.Context, email string, payment string) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
