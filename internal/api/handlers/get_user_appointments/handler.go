package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/appointments
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	serviceReq := &models.GetUserAppointmentsRequest{
		UserID: userID,
		Status: handlers.QueryString(r, "status"),
	}

	result, err := h.service.GetUserAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /users/me/appointments - Invalid status: user_id=%s, %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/me/appointments - Failed to get appointments: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/me/appointments - Appointments retrieved successfully: user_id=%s, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
