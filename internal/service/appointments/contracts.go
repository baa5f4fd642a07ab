package appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID string, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByVendorWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) error
	Cancel(ctx context.Context, id string, status domain.AppointmentStatus, reason *string) error
}

// VendorRepository интерфейс репозитория салонов
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
