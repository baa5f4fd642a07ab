package delete_worker_override

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

type ScheduleService interface {
	DeleteOverride(ctx context.Context, req *models.DeleteOverrideRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
