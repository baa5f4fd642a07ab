package update_appointment_status

import (
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED REJECTED COMPLETED NO_SHOW"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
