package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "serviceId is required"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput     = "invalid request parameters"
	msgVendorNotFound   = "vendor not found"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), workerId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendorId"]

	serviceID := handlers.QueryString(r, "serviceId")
	if serviceID == nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing service ID: vendor_id=%s", vendorID)
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := handlers.QueryString(r, "date")
	if dateStr == nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing date: vendor_id=%s", vendorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(*dateStr)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Пользователь не обязателен, ID нужен только для логов
	userID, _ := middleware.GetUserID(r.Context())

	useCaseReq := &getAvailableSlots.Request{
		UserID:    userID,
		VendorID:  vendorID,
		ServiceID: *serviceID,
		WorkerID:  handlers.QueryString(r, "workerId"),
		Date:      date,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Vendor not found: vendor_id=%s", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Service not found: vendor_id=%s, service_id=%s", vendorID, *serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /vendors/{id}/available-slots - Failed to get slots: vendor_id=%s, service_id=%s, error=%v",
				vendorID, *serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/available-slots - Slots retrieved successfully: vendor_id=%s, service_id=%s, slots_count=%d",
		vendorID, *serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
