package get_vendor_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	msgInvalidParams  = "invalid query parameters"
	msgVendorNotFound = "vendor not found"
	msgForbidden      = "access denied"
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

// Handle GET /api/v1/vendors/{vendorId}/appointments
// Query params: from, to, workerId, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendorId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /vendors/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		vendorID,
		userID,
		handlers.QueryString(r, "workerId"),
		handlers.QueryString(r, "status"),
		query.Get("from"),
		query.Get("to"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Сервис сам проверит, что пользователь владелец салона
	result, err := h.service.GetVendorAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/appointments - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /vendors/{id}/appointments - Access denied: vendor_id=%s, user_id=%s", vendorID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/appointments - Invalid filter: vendor_id=%s, %v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vendors/{id}/appointments - Failed to get appointments: vendor_id=%s, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/appointments - Appointments retrieved successfully: vendor_id=%s, count=%d",
		vendorID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
