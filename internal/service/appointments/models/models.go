package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	UserID             string  `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// GetUserAppointmentsRequest запрос на получение записей пользователя
type GetUserAppointmentsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetVendorAppointmentsRequest запрос на получение записей салона
type GetVendorAppointmentsRequest struct {
	UserID          string     `json:"userId"`
	VendorID        string     `json:"vendorId"`
	WorkerID        *string    `json:"workerId,omitempty"`        // Фильтр по мастеру (опционально)
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и отклоненные записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetVendorAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		VendorID:        r.VendorID,
		WorkerID:        r.WorkerID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return filter, ErrInvalidPeriod
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	VendorID  string    `json:"vendorId"`
	WorkerID  string    `json:"workerId"`
	ServiceID string    `json:"serviceId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		VendorID:           a.VendorID,
		WorkerID:           a.WorkerID,
		ServiceID:          a.ServiceID,
		StartTime:          a.StartTime,
		EndTime:            a.EndTime,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelled := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
