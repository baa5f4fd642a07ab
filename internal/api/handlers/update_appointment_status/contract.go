package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
