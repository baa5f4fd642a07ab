package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "appointment not found"
	msgForbidden          = "access denied"
	msgCannotCancel       = "appointment cannot be cancelled"
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

// Handle PATCH /api/v1/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	// Тело необязательно: пустой запрос отменяет без причины
	var req CancelAppointmentRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	err := h.service.Cancel(r.Context(), appointmentID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, user_id=%s",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
