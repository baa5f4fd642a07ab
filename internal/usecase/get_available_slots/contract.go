package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBlockingForWorkers получает записи PENDING и CONFIRMED указанных мастеров, пересекающие [from, to)
	GetBlockingForWorkers(ctx context.Context, vendorID string, workerIDs []string, from, to time.Time) ([]*domain.Appointment, error)
}

// VendorRepository интерфейс репозитория салонов
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// WorkerRepository интерфейс репозитория мастеров
type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	// GetByVendorAndService получает мастеров салона, выполняющих услугу
	GetByVendorAndService(ctx context.Context, vendorID, serviceID string) ([]*domain.Worker, error)
}

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetOverride(ctx context.Context, workerID string, date time.Time) (*domain.WorkerScheduleOverride, error)
	GetWeeklyAvailability(ctx context.Context, workerID string, dayOfWeek int) (*domain.WorkerAvailability, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
