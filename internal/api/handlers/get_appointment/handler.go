package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	msgNotFound  = "appointment not found"
	msgForbidden = "access denied"
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

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved successfully: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
