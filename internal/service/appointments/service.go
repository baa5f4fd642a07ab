package appointments

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	vendorRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/vendor"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	vendorRepo      VendorRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	vendorRepo VendorRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		vendorRepo:      vendorRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Запись видна пользователю, который её создал, и владельцу салона
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, userID)

	appointment, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if appointment.UserID != userID {
		if err := s.checkOwnerAccess(ctx, appointment.VendorID, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", userID, id)
			return nil, accessError(err)
		}
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю записей пользователя, новые первыми
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%s, status=%v", req.UserID, req.Status)

	var status *domain.AppointmentStatus
	if req.Status != nil {
		parsed, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	appointments, err := s.appointmentRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%s", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetVendorAppointments получает записи салона с фильтрацией по мастеру, периоду и статусу
// Доступно только владельцу салона
func (s *Service) GetVendorAppointments(ctx context.Context, req *models.GetVendorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetVendorAppointments: fetching appointments for vendor=%s, user=%s, worker=%v, status=%v, includeInactive=%t",
		req.VendorID, req.UserID, req.WorkerID, req.Status, req.IncludeInactive)

	if err := s.checkOwnerAccess(ctx, req.VendorID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVendorAppointments: invalid filter for vendor=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.GetByVendorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVendorAppointments: repository error for vendor=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: GetVendorAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVendorAppointments: successfully fetched %d appointments for vendor=%s", len(appointments), req.VendorID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Пользователь отменяет свою запись (CANCELLED_BY_USER), владелец салона любую запись салона (CANCELLED_BY_VENDOR)
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, req.UserID)

	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appointment, err := s.getAppointment(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.AppointmentStatus
	if appointment.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		if err := s.checkOwnerAccess(ctx, appointment.VendorID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to cancel appointment id=%s", req.UserID, id)
			return accessError(err)
		}
		cancelStatus = domain.StatusCancelledByVendor
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: appointment id=%s changed status during cancellation", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s with status=%s", id, cancelStatus)
	return nil
}

// UpdateStatus меняет статус записи
// Доступно только владельцу салона. Отмена выполняется через Cancel
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s by user=%s", id, req.Status, req.UserID)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointment, err := s.getAppointment(ctx, "UpdateStatus", id)
	if err != nil {
		return err
	}

	if err := s.checkOwnerAccess(ctx, appointment.VendorID, req.UserID); err != nil {
		return accessError(err)
	}

	if !appointment.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%s", appointment.Status, newStatus, id)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, appointment.Status, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: appointment id=%s changed status concurrently", id)
			return ErrStatusConflict
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return nil
}

// Вспомогательные методы

// getAppointment получает запись и переводит ошибки репозитория в ошибки сервиса
func (s *Service) getAppointment(ctx context.Context, op, id string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}

// checkOwnerAccess проверяет, что пользователь владелец салона
func (s *Service) checkOwnerAccess(ctx context.Context, vendorID, userID string) error {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			s.logger.Warn("checkOwnerAccess: vendor id=%s not found", vendorID)
			return ErrVendorNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get vendor id=%s: %v", vendorID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get vendor: %v", ErrInternal, err)
	}

	if !vendor.IsOwnedBy(userID) {
		s.logger.Warn("checkOwnerAccess: user=%s is not the owner of vendor=%s", userID, vendorID)
		return ErrAccessDenied
	}

	return nil
}

// accessError скрывает отсутствие салона записи за ErrAccessDenied, внутренние ошибки пробрасывает
func accessError(err error) error {
	if errors.Is(err, ErrInternal) {
		return err
	}
	return ErrAccessDenied
}
