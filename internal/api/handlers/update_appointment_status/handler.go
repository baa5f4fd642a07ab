package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "invalid request body, status must be one of CONFIRMED, REJECTED, COMPLETED, NO_SHOW"
	msgNotFound           = "appointment not found"
	msgForbidden          = "access denied"
	msgInvalidTransition  = "status transition is not allowed"
	msgStatusConflict     = "appointment status was changed by another request"
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

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateStatus(r.Context(), appointmentID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/status - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: appointment_id=%s, %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrStatusConflict):
			h.logger.Warn("PATCH /appointments/{id}/status - Status conflict: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgStatusConflict)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated successfully: appointment_id=%s, status=%s",
		appointmentID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
