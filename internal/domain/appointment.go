package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "PENDING"
	StatusConfirmed         AppointmentStatus = "CONFIRMED"
	StatusCancelledByUser   AppointmentStatus = "CANCELLED_BY_USER"
	StatusCancelledByVendor AppointmentStatus = "CANCELLED_BY_VENDOR"
	StatusRejected          AppointmentStatus = "REJECTED"
	StatusCompleted         AppointmentStatus = "COMPLETED"
	StatusNoShow            AppointmentStatus = "NO_SHOW"
)

// allowedTransitions status changes a vendor may apply
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCompleted, StatusNoShow},
}

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsBlocking returns true if an appointment in this status reserves worker time
func (s AppointmentStatus) IsBlocking() bool {
	for _, blocking := range BlockingStatuses {
		if s == blocking {
			return true
		}
	}
	return false
}

// CanTransitionTo returns true if a vendor may move an appointment from s to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment represents a booked service with a worker
type Appointment struct {
	ID        string
	VendorID  string
	WorkerID  string
	ServiceID string
	UserID    string
	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus
	Notes     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment reserves worker time
func (a *Appointment) IsBlocking() bool {
	return a.Status.IsBlocking()
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Overlaps reports whether [start, end) intersects the appointment interval.
// Intervals that only touch at a boundary do not overlap
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

// AppointmentsFilter filter for vendor appointment listings
type AppointmentsFilter struct {
	VendorID        string             // Required
	WorkerID        *string            // Optional worker filter
	From            *time.Time         // Appointments ending after From (optional)
	To              *time.Time         // Appointments starting before To (optional)
	Status          *AppointmentStatus // Optional status filter
	IncludeInactive bool               // Include cancelled and rejected appointments
}
