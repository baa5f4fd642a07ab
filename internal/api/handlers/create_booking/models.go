package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VendorID  string  `json:"vendorId" validate:"required"`
	ServiceID string  `json:"serviceId" validate:"required"`
	WorkerID  string  `json:"workerId" validate:"required"`
	Date      string  `json:"date" validate:"required"` // "2026-10-19"
	Time      string  `json:"time" validate:"required"` // "10:00"
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	VendorID  string    `json:"vendorId"`
	ServiceID string    `json:"serviceId"`
	WorkerID  string    `json:"workerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	errParseDate = errors.New("invalid date")
	errParseTime = errors.New("invalid time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseTime, err)
	}

	return &createBooking.Request{
		UserID:    userID,
		VendorID:  r.VendorID,
		ServiceID: r.ServiceID,
		WorkerID:  r.WorkerID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		VendorID:  resp.VendorID,
		ServiceID: resp.ServiceID,
		WorkerID:  resp.WorkerID,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}
