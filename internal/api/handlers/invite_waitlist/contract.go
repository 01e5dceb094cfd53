package invite_waitlist

import (
	"context"

	"github.com/m04kA/WN-BookingService/internal/service/waitlist/models"
)

type WaitlistService interface {
	Invite(ctx context.Context, email string) (*models.WaitlistEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
