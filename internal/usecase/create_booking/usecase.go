package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	vendorRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/vendor"
	workerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/worker"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	vendorRepo      VendorRepository
	serviceRepo     ServiceRepository
	workerRepo      WorkerRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	policy          domain.BookingPolicy
	timeProvider    TimeProvider
	newID           IDGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	vendorRepo VendorRepository,
	serviceRepo ServiceRepository,
	workerRepo WorkerRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		vendorRepo:      vendorRepo,
		serviceRepo:     serviceRepo,
		workerRepo:      workerRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.NewString,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений повторяется в сериализуемой транзакции, чтобы две записи не заняли одно время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, vendor=%s, service=%s, worker=%s, date=%s, time=%s",
		req.UserID, req.VendorID, req.ServiceID, req.WorkerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в часовом поясе сервиса и текущее время
	date := uc.policy.DateIn(req.Date)
	now := uc.timeProvider.Now()

	if date.Before(uc.policy.Today(now)) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive || !service.BelongsTo(req.VendorID) {
		uc.logger.Warn("CreateBooking: service id=%s is inactive or belongs to another vendor", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем салон
	vendor, err := uc.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			uc.logger.Warn("CreateBooking: vendor id=%s not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vendor id=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	if !vendor.IsActive() {
		uc.logger.Warn("CreateBooking: vendor id=%s has status %s", vendor.ID, vendor.Status)
		return nil, ErrVendorInactive
	}

	// 5. Получаем мастера
	worker, err := uc.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			uc.logger.Warn("CreateBooking: worker id=%s not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get worker id=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if worker.VendorID != vendor.ID {
		uc.logger.Warn("CreateBooking: worker id=%s belongs to vendor id=%s", worker.ID, worker.VendorID)
		return nil, ErrWorkerNotFound
	}

	if !worker.OffersService(service.ID) {
		uc.logger.Warn("CreateBooking: worker id=%s does not provide service id=%s", worker.ID, service.ID)
		return nil, ErrWorkerNotEligible
	}

	// 6. Рабочий интервал мастера на дату
	schedule, err := uc.resolveSchedule(ctx, worker.ID, date, vendor.OperatingHours)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get schedule of worker id=%s: %v", worker.ID, err)
		return nil, fmt.Errorf("%w: failed to get worker schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		uc.logger.Warn("CreateBooking: worker id=%s is not working on %s", worker.ID, date.Format(domain.DateFormat))
		return nil, ErrWorkerUnavailable
	}

	// 7. Слот должен быть на сетке и помещаться в рабочий интервал
	start, err := req.StartTime.On(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end := start.Add(service.Duration())

	if !schedule.Contains(start, end) || !availability.OnGrid(*schedule, start, uc.policy.SlotInterval()) {
		uc.logger.Warn("CreateBooking: slot %s-%s is outside of worker schedule %s-%s or off the grid",
			start.Format(domain.TimeFormat), end.Format(domain.TimeFormat),
			schedule.OpenTime.Format(domain.TimeFormat), schedule.CloseTime.Format(domain.TimeFormat))
		return nil, ErrInvalidTimeSlot
	}

	// 8. Минимальное время до начала записи
	if availability.TooSoon(date, start, now, uc.policy.MinNotice()) {
		uc.logger.Warn("CreateBooking: slot %s is closer than %d minutes", start.Format(domain.TimeFormat), uc.policy.MinBookingNoticeMinutes)
		return nil, fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, uc.policy.MinBookingNoticeMinutes)
	}

	var result *domain.Appointment

	// 9. Повторная проверка пересечений и создание записи в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Блокирующие записи мастера на дату (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetBlockingForWorkers(txCtx, vendor.ID, []string{worker.ID}, date, date.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("failed to get appointments: %w", err)
		}

		// 9.2. Проверяем пересечение
		if availability.HasConflict(existing, start, end) {
			uc.logger.Warn("CreateBooking: worker id=%s is busy at %s", worker.ID, start.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		// 9.3. Создаем запись
		appointment := &domain.Appointment{
			ID:        uc.newID(),
			VendorID:  vendor.ID,
			WorkerID:  worker.ID,
			ServiceID: service.ID,
			UserID:    req.UserID,
			StartTime: start,
			EndTime:   end,
			Status:    domain.StatusPending,
			Notes:     req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			return nil, err
		case errors.Is(err, txmanager.ErrSerialization), errors.Is(err, appointmentRepo.ErrSerialization):
			uc.logger.Warn("CreateBooking: concurrent booking for worker id=%s at %s: %v", worker.ID, start.Format(time.RFC3339), err)
			return nil, ErrSlotNotAvailable
		default:
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		VendorID:  result.VendorID,
		ServiceID: result.ServiceID,
		WorkerID:  result.WorkerID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// resolveSchedule загружает источники расписания и вычисляет рабочий интервал мастера
func (uc *UseCase) resolveSchedule(ctx context.Context, workerID string, date time.Time, vendorHours domain.OperatingHours) (*domain.EffectiveSchedule, error) {
	input := availability.ScheduleInput{
		WorkerID:    workerID,
		Date:        date,
		VendorHours: vendorHours,
	}

	override, err := uc.scheduleRepo.GetOverride(ctx, workerID, date)
	switch {
	case err == nil:
		input.Override = override
	case errors.Is(err, scheduleRepo.ErrOverrideNotFound):
		weekly, err := uc.scheduleRepo.GetWeeklyAvailability(ctx, workerID, int(date.Weekday()))
		switch {
		case err == nil:
			input.Weekly = weekly
		case !errors.Is(err, scheduleRepo.ErrAvailabilityNotFound):
			return nil, fmt.Errorf("get weekly availability: %w", err)
		}
	default:
		return nil, fmt.Errorf("get override: %w", err)
	}

	return availability.ResolveSchedule(input, uc.logger), nil
}
