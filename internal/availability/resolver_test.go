package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

// 2026-10-19 понедельник
var monday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func at(date time.Time, h, m int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

func vendorHours() domain.OperatingHours {
	return domain.OperatingHours{
		"monday": {Open: ptr.Ptr("09:00"), Close: ptr.Ptr("17:00")},
		"sunday": {IsClosed: true},
	}
}

func TestResolveSchedule(t *testing.T) {
	tests := []struct {
		name      string
		input     ScheduleInput
		want      *domain.EffectiveSchedule
		wantWarns int
	}{
		{
			name:  "vendor hours when worker has no schedule",
			input: ScheduleInput{WorkerID: "w1", Date: monday, VendorHours: vendorHours()},
			want:  &domain.EffectiveSchedule{OpenTime: at(monday, 9, 0), CloseTime: at(monday, 17, 0)},
		},
		{
			name: "override wins over weekly and vendor hours",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Override:    &domain.WorkerScheduleOverride{StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("14:30")},
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				VendorHours: vendorHours(),
			},
			want: &domain.EffectiveSchedule{OpenTime: at(monday, 12, 0), CloseTime: at(monday, 14, 30)},
		},
		{
			name: "override day off",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Override:    &domain.WorkerScheduleOverride{IsDayOff: true, StartTime: ptr.Ptr("09:00"), EndTime: ptr.Ptr("17:00")},
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				VendorHours: vendorHours(),
			},
			want: nil,
		},
		{
			name: "override without end time is day off",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Override:    &domain.WorkerScheduleOverride{StartTime: ptr.Ptr("09:00")},
				VendorHours: vendorHours(),
			},
			want: nil,
		},
		{
			name: "malformed override is day off",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Override:    &domain.WorkerScheduleOverride{StartTime: ptr.Ptr("9am"), EndTime: ptr.Ptr("17:00")},
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				VendorHours: vendorHours(),
			},
			want:      nil,
			wantWarns: 1,
		},
		{
			name: "weekly template wins over vendor hours",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				VendorHours: vendorHours(),
			},
			want: &domain.EffectiveSchedule{OpenTime: at(monday, 10, 0), CloseTime: at(monday, 18, 0)},
		},
		{
			name: "weekly template not available",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00", IsAvailable: false},
				VendorHours: vendorHours(),
			},
			want: nil,
		},
		{
			name: "weekly template without times",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, IsAvailable: true},
				VendorHours: vendorHours(),
			},
			want: nil,
		},
		{
			name: "malformed weekly template falls back to vendor hours",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				Weekly:      &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "25:00", EndTime: "18:00", IsAvailable: true},
				VendorHours: vendorHours(),
			},
			want:      &domain.EffectiveSchedule{OpenTime: at(monday, 9, 0), CloseTime: at(monday, 17, 0)},
			wantWarns: 1,
		},
		{
			name:  "vendor closed",
			input: ScheduleInput{WorkerID: "w1", Date: monday.AddDate(0, 0, 6), VendorHours: vendorHours()},
			want:  nil,
		},
		{
			name:  "vendor has no entry for weekday",
			input: ScheduleInput{WorkerID: "w1", Date: monday.AddDate(0, 0, 1), VendorHours: vendorHours()},
			want:  nil,
		},
		{
			name: "malformed vendor hours",
			input: ScheduleInput{
				WorkerID:    "w1",
				Date:        monday,
				VendorHours: domain.OperatingHours{"monday": {Open: ptr.Ptr("09:00"), Close: ptr.Ptr("5pm")}},
			},
			want:      nil,
			wantWarns: 1,
		},
		{
			name:  "no sources at all",
			input: ScheduleInput{WorkerID: "w1", Date: monday},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			got := ResolveSchedule(tt.input, log)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.True(t, tt.want.OpenTime.Equal(got.OpenTime), "open: want %s, got %s", tt.want.OpenTime, got.OpenTime)
				assert.True(t, tt.want.CloseTime.Equal(got.CloseTime), "close: want %s, got %s", tt.want.CloseTime, got.CloseTime)
			}
			assert.Len(t, log.warnings, tt.wantWarns)
		})
	}
}

func TestResolveSchedule_VendorHoursIgnoredWhenWorkerScheduleExists(t *testing.T) {
	weekly := &domain.WorkerAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "16:00", IsAvailable: true}
	override := &domain.WorkerScheduleOverride{StartTime: ptr.Ptr("11:00"), EndTime: ptr.Ptr("13:00")}

	otherHours := domain.OperatingHours{"monday": {Open: ptr.Ptr("06:00"), Close: ptr.Ptr("23:00")}}

	for _, in := range []ScheduleInput{
		{WorkerID: "w1", Date: monday, Weekly: weekly},
		{WorkerID: "w1", Date: monday, Override: override, Weekly: weekly},
	} {
		in.VendorHours = vendorHours()
		first := ResolveSchedule(in, &recordingLogger{})

		in.VendorHours = otherHours
		second := ResolveSchedule(in, &recordingLogger{})

		require.NotNil(t, first)
		assert.Equal(t, first, second)
	}
}

func TestResolveSchedule_UsesDateLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2026, time.October, 19, 0, 0, 0, 0, loc)
	got := ResolveSchedule(ScheduleInput{WorkerID: "w1", Date: date, VendorHours: vendorHours()}, &recordingLogger{})

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.October, 19, 9, 0, 0, 0, loc), got.OpenTime)
	assert.Equal(t, time.Date(2026, time.October, 19, 6, 0, 0, 0, time.UTC), got.OpenTime.UTC())
}
