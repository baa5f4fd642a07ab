package get_available_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// WorkerResponse мастер, свободный в слот
type WorkerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time             string           `json:"time"` // "10:00"
	AvailableWorkers []WorkerResponse `json:"availableWorkers"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string         `json:"date"` // "2026-10-19"
	VendorID       string         `json:"vendorId"`
	ServiceID      string         `json:"serviceId"`
	WorkerID       *string        `json:"workerId,omitempty"`
	AvailableSlots []SlotResponse `json:"availableSlots"`
	Message        string         `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		VendorID:       resp.VendorID,
		ServiceID:      resp.ServiceID,
		WorkerID:       resp.WorkerID,
		AvailableSlots: make([]SlotResponse, 0, len(resp.Slots)),
		Message:        resp.Message,
	}

	for _, slot := range resp.Slots {
		workers := make([]WorkerResponse, 0, len(slot.AvailableWorkers))
		for _, w := range slot.AvailableWorkers {
			workers = append(workers, WorkerResponse{ID: w.ID, Name: w.Name})
		}
		result.AvailableSlots = append(result.AvailableSlots, SlotResponse{
			Time:             slot.Time.String(),
			AvailableWorkers: workers,
		})
	}

	return result
}
