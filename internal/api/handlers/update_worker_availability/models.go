package update_worker_availability

import (
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	StartTime   *string `json:"startTime,omitempty"` // "09:00"
	EndTime     *string `json:"endTime,omitempty"`   // "18:00"
	IsAvailable *bool   `json:"isAvailable" validate:"required"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(userID, workerID string, dayOfWeek int) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		UserID:      userID,
		WorkerID:    workerID,
		DayOfWeek:   dayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: *r.IsAvailable,
	}
}
