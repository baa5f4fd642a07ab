package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// GetScheduleRequest запрос расписания мастера за период [From, To]
type GetScheduleRequest struct {
	WorkerID string    `json:"workerId"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

// UpdateAvailabilityRequest запрос на изменение строки недельного шаблона
type UpdateAvailabilityRequest struct {
	UserID      string  `json:"userId"`
	WorkerID    string  `json:"workerId"`
	DayOfWeek   int     `json:"dayOfWeek"` // 0 = воскресенье
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateAvailabilityRequest) ToDomain() *domain.WorkerAvailability {
	a := &domain.WorkerAvailability{
		WorkerID:    r.WorkerID,
		DayOfWeek:   r.DayOfWeek,
		IsAvailable: r.IsAvailable,
	}
	if r.StartTime != nil {
		a.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		a.EndTime = *r.EndTime
	}
	return a
}

// UpsertOverrideRequest запрос на создание или замену исключения на дату
type UpsertOverrideRequest struct {
	UserID    string    `json:"userId"`
	WorkerID  string    `json:"workerId"`
	Date      time.Time `json:"date"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	IsDayOff  bool      `json:"isDayOff"`
	Notes     *string   `json:"notes,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertOverrideRequest) ToDomain() *domain.WorkerScheduleOverride {
	o := &domain.WorkerScheduleOverride{
		WorkerID: r.WorkerID,
		Date:     r.Date,
		IsDayOff: r.IsDayOff,
		Notes:    r.Notes,
	}
	// У выходного дня времена не хранятся
	if !r.IsDayOff {
		o.StartTime = r.StartTime
		o.EndTime = r.EndTime
	}
	return o
}

// DeleteOverrideRequest запрос на удаление исключения
type DeleteOverrideRequest struct {
	UserID   string    `json:"userId"`
	WorkerID string    `json:"workerId"`
	Date     time.Time `json:"date"`
}

// Response модели

// AvailabilityResponse строка недельного шаблона
type AvailabilityResponse struct {
	DayOfWeek   int       `json:"dayOfWeek"`
	StartTime   *string   `json:"startTime,omitempty"`
	EndTime     *string   `json:"endTime,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OverrideResponse исключение на дату
type OverrideResponse struct {
	Date      string    `json:"date"` // "2026-10-19"
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	IsDayOff  bool      `json:"isDayOff"`
	Notes     *string   `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleResponse расписание мастера: недельный шаблон и исключения за период
type ScheduleResponse struct {
	WorkerID  string                 `json:"workerId"`
	From      string                 `json:"from"`
	To        string                 `json:"to"`
	Weekly    []AvailabilityResponse `json:"weekly"`
	Overrides []OverrideResponse     `json:"overrides"`
}

// Методы конвертации

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.WorkerAvailability) AvailabilityResponse {
	resp := AvailabilityResponse{
		DayOfWeek:   a.DayOfWeek,
		IsAvailable: a.IsAvailable,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.StartTime != "" {
		resp.StartTime = &a.StartTime
	}
	if a.EndTime != "" {
		resp.EndTime = &a.EndTime
	}
	return resp
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.WorkerScheduleOverride) OverrideResponse {
	return OverrideResponse{
		Date:      o.Date.Format(domain.DateFormat),
		StartTime: o.StartTime,
		EndTime:   o.EndTime,
		IsDayOff:  o.IsDayOff,
		Notes:     o.Notes,
		UpdatedAt: o.UpdatedAt,
	}
}
