package update_schedule

import (
	"context"
	"time"

	"github.com/m04kA/WN-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Save(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
	BlockDate(ctx context.Context, date time.Time) (*models.ScheduleResponse, error)
	UnblockDate(ctx context.Context, date time.Time) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
