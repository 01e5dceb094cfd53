package book_first_session

import (
	"context"

	packagesModels "github.com/m04kA/WN-BookingService/internal/service/packages/models"
	createBooking "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type PackageService interface {
	GetByID(ctx context.Context, id int64) (*packagesModels.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
