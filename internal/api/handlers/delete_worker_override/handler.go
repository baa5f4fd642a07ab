package delete_worker_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

const (
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgWorkerNotFound   = "worker not found"
	msgOverrideNotFound = "schedule override not found"
	msgForbidden        = "access denied"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/workers/{workerId}/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /workers/{id}/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /workers/{id}/overrides/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	err = h.service.DeleteOverride(r.Context(), &models.DeleteOverrideRequest{
		UserID:   userID,
		WorkerID: workerID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrWorkerNotFound):
			h.logger.Warn("DELETE /workers/{id}/overrides/{date} - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, schedules.ErrOverrideNotFound):
			h.logger.Warn("DELETE /workers/{id}/overrides/{date} - Override not found: worker_id=%s, date=%s", workerID, vars["date"])
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("DELETE /workers/{id}/overrides/{date} - Access denied: worker_id=%s, user_id=%s", workerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /workers/{id}/overrides/{date} - Failed to delete override: worker_id=%s, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /workers/{id}/overrides/{date} - Override deleted successfully: worker_id=%s, date=%s",
		workerID, vars["date"])
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
