package upsert_worker_override

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

// UpsertOverrideRequest HTTP request model
type UpsertOverrideRequest struct {
	StartTime *string `json:"startTime,omitempty"` // "12:00"
	EndTime   *string `json:"endTime,omitempty"`   // "16:00"
	IsDayOff  bool    `json:"isDayOff"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpsertOverrideRequest) ToServiceRequest(userID, workerID string, date time.Time) *models.UpsertOverrideRequest {
	return &models.UpsertOverrideRequest{
		UserID:    userID,
		WorkerID:  workerID,
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsDayOff:  r.IsDayOff,
		Notes:     r.Notes,
	}
}
