package schedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний мастеров
type ScheduleRepository interface {
	ListWeeklyAvailability(ctx context.Context, workerID string) ([]*domain.WorkerAvailability, error)
	UpsertAvailability(ctx context.Context, availability *domain.WorkerAvailability) (*domain.WorkerAvailability, error)
	ListOverrides(ctx context.Context, workerID string, from, to time.Time) ([]*domain.WorkerScheduleOverride, error)
	UpsertOverride(ctx context.Context, override *domain.WorkerScheduleOverride) (*domain.WorkerScheduleOverride, error)
	DeleteOverride(ctx context.Context, workerID string, date time.Time) error
}

// WorkerRepository интерфейс репозитория мастеров
type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
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
