package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	vendorRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/vendor"
	workerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/worker"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

// Service сервис для работы с расписаниями мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	workerRepo   WorkerRepository
	vendorRepo   VendorRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	workerRepo WorkerRepository,
	vendorRepo VendorRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		workerRepo:   workerRepo,
		vendorRepo:   vendorRepo,
		logger:       logger,
	}
}

// GetSchedule получает недельный шаблон мастера и исключения за период
// Публичный метод - доступен всем
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule of worker=%s, period=%s to %s",
		req.WorkerID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.getWorker(ctx, "GetSchedule", req.WorkerID); err != nil {
		return nil, err
	}

	weekly, err := s.scheduleRepo.ListWeeklyAvailability(ctx, req.WorkerID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list weekly availability of worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	overrides, err := s.scheduleRepo.ListOverrides(ctx, req.WorkerID, req.From, req.To)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list overrides of worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		WorkerID:  req.WorkerID,
		From:      req.From.Format(domain.DateFormat),
		To:        req.To.Format(domain.DateFormat),
		Weekly:    make([]models.AvailabilityResponse, 0, len(weekly)),
		Overrides: make([]models.OverrideResponse, 0, len(overrides)),
	}
	for _, a := range weekly {
		resp.Weekly = append(resp.Weekly, models.FromDomainAvailability(a))
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, models.FromDomainOverride(o))
	}

	s.logger.Info("GetSchedule: successfully fetched %d weekly rows and %d overrides of worker=%s",
		len(resp.Weekly), len(resp.Overrides), req.WorkerID)
	return resp, nil
}

// UpdateAvailability создает или заменяет строку недельного шаблона
// Доступно только владельцу салона мастера
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateAvailability: worker=%s, day=%d, available=%t by user=%s",
		req.WorkerID, req.DayOfWeek, req.IsAvailable, req.UserID)

	// 1. Валидируем входные данные
	if err := validateAvailability(req); err != nil {
		s.logger.Warn("UpdateAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа
	if err := s.checkWorkerOwner(ctx, "UpdateAvailability", req.WorkerID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Сохраняем
	saved, err := s.scheduleRepo.UpsertAvailability(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("UpdateAvailability: repository error for worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: successfully saved day=%d of worker=%s", req.DayOfWeek, req.WorkerID)
	resp := models.FromDomainAvailability(saved)
	return &resp, nil
}

// UpsertOverride создает или заменяет исключение на дату
// Доступно только владельцу салона мастера
func (s *Service) UpsertOverride(ctx context.Context, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("UpsertOverride: worker=%s, date=%s, dayOff=%t by user=%s",
		req.WorkerID, req.Date.Format(domain.DateFormat), req.IsDayOff, req.UserID)

	// 1. Валидируем входные данные
	if err := validateOverride(req); err != nil {
		s.logger.Warn("UpsertOverride: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа
	if err := s.checkWorkerOwner(ctx, "UpsertOverride", req.WorkerID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Сохраняем
	saved, err := s.scheduleRepo.UpsertOverride(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("UpsertOverride: repository error for worker=%s: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: successfully saved override of worker=%s on %s", req.WorkerID, req.Date.Format(domain.DateFormat))
	resp := models.FromDomainOverride(saved)
	return &resp, nil
}

// DeleteOverride удаляет исключение на дату
// Доступно только владельцу салона мастера
func (s *Service) DeleteOverride(ctx context.Context, req *models.DeleteOverrideRequest) error {
	s.logger.Info("DeleteOverride: worker=%s, date=%s by user=%s", req.WorkerID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkWorkerOwner(ctx, "DeleteOverride", req.WorkerID, req.UserID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteOverride(ctx, req.WorkerID, req.Date); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: no override of worker=%s on %s", req.WorkerID, req.Date.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for worker=%s: %v", req.WorkerID, err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOverride: successfully deleted override of worker=%s on %s", req.WorkerID, req.Date.Format(domain.DateFormat))
	return nil
}

// Вспомогательные методы

// getWorker получает мастера и переводит ошибки репозитория в ошибки сервиса
func (s *Service) getWorker(ctx context.Context, op, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			s.logger.Warn("%s: worker id=%s not found", op, workerID)
			return nil, ErrWorkerNotFound
		}
		s.logger.Error("%s: failed to get worker id=%s: %v", op, workerID, err)
		return nil, fmt.Errorf("%w: %s - failed to get worker: %v", ErrInternal, op, err)
	}
	return worker, nil
}

// checkWorkerOwner проверяет, что пользователь владелец салона, в котором работает мастер
func (s *Service) checkWorkerOwner(ctx context.Context, op, workerID, userID string) error {
	worker, err := s.getWorker(ctx, op, workerID)
	if err != nil {
		return err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, worker.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			s.logger.Warn("%s: vendor id=%s of worker=%s not found", op, worker.VendorID, workerID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: failed to get vendor id=%s: %v", op, worker.VendorID, err)
		return fmt.Errorf("%w: %s - failed to get vendor: %v", ErrInternal, op, err)
	}

	if !vendor.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%s is not the owner of vendor=%s", op, userID, vendor.ID)
		return ErrAccessDenied
	}

	return nil
}
