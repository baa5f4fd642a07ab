package cancel_appointment

import (
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(userID string) *models.CancelRequest {
	return &models.CancelRequest{
		UserID:             userID,
		CancellationReason: r.Reason,
	}
}
