package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// GetBlockingForWorkers внутри транзакции блокирует найденные строки (FOR UPDATE)
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
}

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	GetOverride(ctx context.Context, workerID string, date time.Time) (*domain.WorkerScheduleOverride, error)
	GetWeeklyAvailability(ctx context.Context, workerID string, dayOfWeek int) (*domain.WorkerAvailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор ID записей (для тестирования)
type IDGenerator func() string

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
