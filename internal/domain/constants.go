package domain

// Default booking policy values
const (
	DefaultSlotIntervalMinutes     = 15
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
	DefaultTimezone                = "UTC"
)

// Business validation constants
const (
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 240
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxScheduleRangeDays        = 93
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses statuses of appointments that reserve worker time.
// Only these are taken into account by conflict detection
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses statuses hidden from listings unless explicitly requested
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByUser,
	StatusCancelledByVendor,
	StatusRejected,
}

// AllStatuses every known appointment status
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelledByUser,
	StatusCancelledByVendor,
	StatusRejected,
	StatusCompleted,
	StatusNoShow,
}
