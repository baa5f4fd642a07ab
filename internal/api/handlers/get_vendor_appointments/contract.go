package get_vendor_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

type AppointmentService interface {
	GetVendorAppointments(ctx context.Context, req *models.GetVendorAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
