package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	vendorRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/vendor"
	workerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/worker"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	vendorRepo      VendorRepository
	serviceRepo     ServiceRepository
	workerRepo      WorkerRepository
	scheduleRepo    ScheduleRepository
	policy          domain.BookingPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	vendorRepo VendorRepository,
	serviceRepo ServiceRepository,
	workerRepo WorkerRepository,
	scheduleRepo ScheduleRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		vendorRepo:      vendorRepo,
		serviceRepo:     serviceRepo,
		workerRepo:      workerRepo,
		scheduleRepo:    scheduleRepo,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в часовом поясе сервиса и текущее время
	date := uc.policy.DateIn(req.Date)
	now := uc.timeProvider.Now()

	uc.logger.Info("GetAvailableSlots: user=%s, vendor=%s, service=%s, date=%s",
		req.UserID, req.VendorID, req.ServiceID, date.Format(domain.DateFormat))

	resp := &Response{
		Date:      date,
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		WorkerID:  req.WorkerID,
		Slots:     []Slot{},
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive || !service.BelongsTo(req.VendorID) {
		uc.logger.Warn("GetAvailableSlots: service id=%s is inactive or belongs to another vendor", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем салон
	vendor, err := uc.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			uc.logger.Warn("GetAvailableSlots: vendor id=%s not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get vendor id=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	if !vendor.IsActive() {
		uc.logger.Info("GetAvailableSlots: vendor id=%s has status %s", vendor.ID, vendor.Status)
		resp.Message = MessageVendorInactive
		return resp, nil
	}

	// 5. Прошедшая дата
	if date.Before(uc.policy.Today(now)) {
		resp.Message = MessagePastDate
		return resp, nil
	}

	// 6. Мастера, выполняющие услугу
	workers, message, err := uc.eligibleWorkers(ctx, req, service)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		resp.Message = message
		return resp, nil
	}

	workerIDs := make([]string, 0, len(workers))
	for _, w := range workers {
		workerIDs = append(workerIDs, w.ID)
	}

	// 7. Блокирующие записи всех мастеров на дату одним запросом
	appointments, err := uc.appointmentRepo.GetBlockingForWorkers(ctx, vendor.ID, workerIDs, date, date.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	byWorker := groupByWorker(appointments)

	// 8. Расписание и слоты каждого мастера
	perWorker := make([]workerSlots, 0, len(workers))
	for _, worker := range workers {
		input, err := uc.scheduleInput(ctx, worker, date, vendor.OperatingHours)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get schedule of worker id=%s: %v", worker.ID, err)
			return nil, fmt.Errorf("%w: failed to get worker schedule: %v", ErrInternal, err)
		}

		schedule := availability.ResolveSchedule(input, uc.logger)
		if schedule == nil {
			continue
		}

		times := availability.GenerateSlots(availability.SlotParams{
			Schedule:     *schedule,
			Duration:     service.Duration(),
			Interval:     uc.policy.SlotInterval(),
			Appointments: byWorker[worker.ID],
			Date:         date,
			Now:          now,
			MinNotice:    uc.policy.MinNotice(),
		})

		perWorker = append(perWorker, workerSlots{
			worker: domain.WorkerRef{ID: worker.ID, Name: worker.Name},
			times:  times,
		})
	}

	// 9. Объединяем по времени
	resp.Slots = aggregateSlots(perWorker)
	if len(resp.Slots) == 0 {
		resp.Message = MessageNoSlots
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for vendor=%s, service=%s, date=%s, workers=%d",
		len(resp.Slots), req.VendorID, req.ServiceID, date.Format(domain.DateFormat), len(workers))

	return resp, nil
}

// eligibleWorkers возвращает мастеров для расчета.
// Если список пуст, второе значение содержит пояснение для ответа
func (uc *UseCase) eligibleWorkers(ctx context.Context, req *Request, service *domain.Service) ([]*domain.Worker, string, error) {
	if req.WorkerID == nil {
		workers, err := uc.workerRepo.GetByVendorAndService(ctx, req.VendorID, service.ID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get workers of vendor id=%s: %v", req.VendorID, err)
			return nil, "", fmt.Errorf("%w: failed to get workers: %v", ErrInternal, err)
		}
		if len(workers) == 0 {
			uc.logger.Info("GetAvailableSlots: no workers provide service id=%s", service.ID)
			return nil, MessageNoWorkers, nil
		}
		return workers, "", nil
	}

	worker, err := uc.workerRepo.GetByID(ctx, *req.WorkerID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			uc.logger.Warn("GetAvailableSlots: worker id=%s not found", *req.WorkerID)
			return nil, MessageWorkerUnavailable, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get worker id=%s: %v", *req.WorkerID, err)
		return nil, "", fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if worker.VendorID != req.VendorID || !worker.OffersService(service.ID) {
		uc.logger.Warn("GetAvailableSlots: worker id=%s does not provide service id=%s at vendor id=%s",
			worker.ID, service.ID, req.VendorID)
		return nil, MessageWorkerUnavailable, nil
	}

	return []*domain.Worker{worker}, "", nil
}
