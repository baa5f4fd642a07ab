package get_worker_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
