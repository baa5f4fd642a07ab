package domain

import "time"

// WorkerAvailability weekly schedule template row of a worker.
// At most one row exists per (WorkerID, DayOfWeek).
// Times are stored as entered ("HH:MM") and may be malformed in legacy data
type WorkerAvailability struct {
	WorkerID    string
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	StartTime   string
	EndTime     string
	IsAvailable bool
	UpdatedAt   time.Time
}

// WorkerScheduleOverride date-specific exception to the weekly template.
// At most one row exists per (WorkerID, Date)
type WorkerScheduleOverride struct {
	WorkerID  string
	Date      time.Time
	StartTime *string
	EndTime   *string
	IsDayOff  bool
	Notes     *string
	UpdatedAt time.Time
}

// EffectiveSchedule resolved working interval of one worker on one calendar date
type EffectiveSchedule struct {
	OpenTime  time.Time
	CloseTime time.Time
}

// Contains returns true if [start, end) lies within the schedule
func (s EffectiveSchedule) Contains(start, end time.Time) bool {
	return !start.Before(s.OpenTime) && !end.After(s.CloseTime) && start.Before(end)
}
