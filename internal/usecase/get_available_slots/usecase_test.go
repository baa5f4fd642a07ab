package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	vendorRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/vendor"
	workerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/worker"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// 2026-10-19 понедельник
var monday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type store struct {
	vendors      map[string]*domain.Vendor
	services     map[string]*domain.Service
	workers      []*domain.Worker
	overrides    map[string]*domain.WorkerScheduleOverride // workerID|date
	weekly       map[string]*domain.WorkerAvailability     // workerID|day
	appointments []*domain.Appointment

	appointmentCalls int
	appointmentsErr  error
}

func newStore() *store {
	return &store{
		vendors: map[string]*domain.Vendor{
			"v-1": {
				ID:     "v-1",
				Status: domain.VendorStatusActive,
				OperatingHours: domain.OperatingHours{
					"monday": {Open: ptr.Ptr("09:00"), Close: ptr.Ptr("17:00")},
				},
			},
		},
		services: map[string]*domain.Service{
			"s-1": {ID: "s-1", VendorID: "v-1", Name: "Haircut", DurationMinutes: 30, IsActive: true},
		},
		workers: []*domain.Worker{
			{ID: "w-1", VendorID: "v-1", Name: "Anna", ServiceIDs: []string{"s-1"}},
		},
		overrides: map[string]*domain.WorkerScheduleOverride{},
		weekly:    map[string]*domain.WorkerAvailability{},
	}
}

func (s *store) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	if v, ok := s.vendors[id]; ok {
		return v, nil
	}
	return nil, vendorRepo.ErrVendorNotFound
}

type serviceStore struct{ *store }

func (s serviceStore) GetByID(_ context.Context, id string) (*domain.Service, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type workerStore struct{ *store }

func (s workerStore) GetByID(_ context.Context, id string) (*domain.Worker, error) {
	for _, w := range s.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, workerRepo.ErrWorkerNotFound
}

func (s workerStore) GetByVendorAndService(_ context.Context, vendorID, serviceID string) ([]*domain.Worker, error) {
	result := make([]*domain.Worker, 0)
	for _, w := range s.workers {
		if w.VendorID == vendorID && w.OffersService(serviceID) {
			result = append(result, w)
		}
	}
	return result, nil
}

func (s *store) GetOverride(_ context.Context, workerID string, date time.Time) (*domain.WorkerScheduleOverride, error) {
	if o, ok := s.overrides[workerID+"|"+date.Format(domain.DateFormat)]; ok {
		return o, nil
	}
	return nil, scheduleRepo.ErrOverrideNotFound
}

func (s *store) GetWeeklyAvailability(_ context.Context, workerID string, dayOfWeek int) (*domain.WorkerAvailability, error) {
	if a, ok := s.weekly[workerID+"|"+time.Weekday(dayOfWeek).String()]; ok {
		return a, nil
	}
	return nil, scheduleRepo.ErrAvailabilityNotFound
}

func (s *store) GetBlockingForWorkers(_ context.Context, vendorID string, workerIDs []string, from, to time.Time) ([]*domain.Appointment, error) {
	s.appointmentCalls++
	if s.appointmentsErr != nil {
		return nil, s.appointmentsErr
	}

	ids := make(map[string]bool, len(workerIDs))
	for _, id := range workerIDs {
		ids[id] = true
	}

	result := make([]*domain.Appointment, 0)
	for _, a := range s.appointments {
		if a.VendorID == vendorID && ids[a.WorkerID] && a.IsBlocking() && a.StartTime.Before(to) && a.EndTime.After(from) {
			result = append(result, a)
		}
	}
	return result, nil
}

func newUseCase(s *store, now time.Time) *UseCase {
	uc := NewUseCase(s, s, serviceStore{s}, workerStore{s}, s, domain.DefaultBookingPolicy(), logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func times(slots []Slot) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Time)
	}
	return result
}

func fullDay() []types.TimeString {
	result := make([]types.TimeString, 0)
	for cursor := at(9, 0); !cursor.After(at(16, 30)); cursor = cursor.Add(15 * time.Minute) {
		result = append(result, types.NewTimeString(cursor))
	}
	return result
}

func request() *Request {
	return &Request{VendorID: "v-1", ServiceID: "s-1", Date: monday}
}

func TestUseCase_VendorHoursWithoutWorkerSchedule(t *testing.T) {
	s := newStore()
	s.workers = append(s.workers, &domain.Worker{ID: "w-2", VendorID: "v-1", Name: "Boris", ServiceIDs: []string{"s-1"}})

	resp, err := newUseCase(s, monday.AddDate(0, 0, -2)).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, fullDay(), times(resp.Slots))
	assert.Empty(t, resp.Message)
	for _, slot := range resp.Slots {
		assert.Equal(t, []domain.WorkerRef{{ID: "w-1", Name: "Anna"}, {ID: "w-2", Name: "Boris"}}, slot.AvailableWorkers)
	}
	assert.Equal(t, 1, s.appointmentCalls)
}

func TestUseCase_ConfirmedAppointmentBlocksOverlappingSlots(t *testing.T) {
	s := newStore()
	s.appointments = []*domain.Appointment{
		{VendorID: "v-1", WorkerID: "w-1", StartTime: at(10, 0), EndTime: at(10, 30), Status: domain.StatusConfirmed},
		{VendorID: "v-1", WorkerID: "w-1", StartTime: at(14, 0), EndTime: at(15, 0), Status: domain.StatusCancelledByUser},
	}

	resp, err := newUseCase(s, monday.AddDate(0, 0, -2)).Execute(context.Background(), request())
	require.NoError(t, err)

	got := times(resp.Slots)
	assert.NotContains(t, got, types.TimeString("09:45"))
	assert.NotContains(t, got, types.TimeString("10:00"))
	assert.NotContains(t, got, types.TimeString("10:15"))
	assert.Contains(t, got, types.TimeString("09:30"))
	assert.Contains(t, got, types.TimeString("10:30"))
	assert.Contains(t, got, types.TimeString("14:00"))
	assert.Len(t, got, len(fullDay())-3)
}

func TestUseCase_DayOffOverride(t *testing.T) {
	s := newStore()
	s.weekly["w-1|Monday"] = &domain.WorkerAvailability{WorkerID: "w-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true}
	s.overrides["w-1|2026-10-19"] = &domain.WorkerScheduleOverride{WorkerID: "w-1", Date: monday, IsDayOff: true}

	resp, err := newUseCase(s, monday.AddDate(0, 0, -2)).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, MessageNoSlots, resp.Message)
}

func TestUseCase_LeadTimeLeavesNoSlotsToday(t *testing.T) {
	s := newStore()
	s.services["s-1"].DurationMinutes = 15

	resp, err := newUseCase(s, at(16, 50)).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, MessageNoSlots, resp.Message)
}

func TestUseCase_WorkersMergedIntoOneSlot(t *testing.T) {
	s := newStore()
	s.workers = append(s.workers, &domain.Worker{ID: "w-2", VendorID: "v-1", Name: "Boris", ServiceIDs: []string{"s-1"}})
	s.weekly["w-1|Monday"] = &domain.WorkerAvailability{WorkerID: "w-1", DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", IsAvailable: true}
	s.overrides["w-2|2026-10-19"] = &domain.WorkerScheduleOverride{WorkerID: "w-2", Date: monday, StartTime: ptr.Ptr("11:00"), EndTime: ptr.Ptr("13:00")}

	resp, err := newUseCase(s, monday.AddDate(0, 0, -1)).Execute(context.Background(), request())
	require.NoError(t, err)

	var eleven *Slot
	for i := range resp.Slots {
		if resp.Slots[i].Time == "11:00" {
			require.Nil(t, eleven, "11:00 must appear once")
			eleven = &resp.Slots[i]
		}
	}
	require.NotNil(t, eleven)
	assert.Equal(t, []domain.WorkerRef{{ID: "w-1", Name: "Anna"}, {ID: "w-2", Name: "Boris"}}, eleven.AvailableWorkers)

	assert.Equal(t, []types.TimeString{
		"10:00", "10:15", "10:30", "10:45", "11:00", "11:15", "11:30", "11:45", "12:00", "12:15", "12:30",
	}, times(resp.Slots))
	assert.Equal(t, []domain.WorkerRef{{ID: "w-1", Name: "Anna"}}, resp.Slots[0].AvailableWorkers)
	assert.Equal(t, []domain.WorkerRef{{ID: "w-2", Name: "Boris"}}, resp.Slots[len(resp.Slots)-1].AvailableWorkers)
}

func TestUseCase_SingleWorker(t *testing.T) {
	t.Run("narrows to the worker", func(t *testing.T) {
		s := newStore()
		s.workers = append(s.workers, &domain.Worker{ID: "w-2", VendorID: "v-1", Name: "Boris", ServiceIDs: []string{"s-1"}})

		req := request()
		req.WorkerID = ptr.Ptr("w-2")
		resp, err := newUseCase(s, monday.AddDate(0, 0, -1)).Execute(context.Background(), req)
		require.NoError(t, err)

		require.NotEmpty(t, resp.Slots)
		for _, slot := range resp.Slots {
			assert.Equal(t, []domain.WorkerRef{{ID: "w-2", Name: "Boris"}}, slot.AvailableWorkers)
		}
		assert.Equal(t, "w-2", *resp.WorkerID)
	})

	t.Run("unknown worker", func(t *testing.T) {
		req := request()
		req.WorkerID = ptr.Ptr("w-404")
		resp, err := newUseCase(newStore(), monday).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MessageWorkerUnavailable, resp.Message)
	})

	t.Run("worker of another vendor", func(t *testing.T) {
		s := newStore()
		s.workers = append(s.workers, &domain.Worker{ID: "w-9", VendorID: "v-2", Name: "Eve", ServiceIDs: []string{"s-1"}})

		req := request()
		req.WorkerID = ptr.Ptr("w-9")
		resp, err := newUseCase(s, monday).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, MessageWorkerUnavailable, resp.Message)
	})

	t.Run("worker without the service", func(t *testing.T) {
		s := newStore()
		s.workers[0].ServiceIDs = []string{"s-2"}

		req := request()
		req.WorkerID = ptr.Ptr("w-1")
		resp, err := newUseCase(s, monday).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, MessageWorkerUnavailable, resp.Message)
		assert.Zero(t, s.appointmentCalls)
	})
}

func TestUseCase_EmptyResults(t *testing.T) {
	t.Run("inactive vendor", func(t *testing.T) {
		s := newStore()
		s.vendors["v-1"].Status = domain.VendorStatusSuspended

		resp, err := newUseCase(s, monday).Execute(context.Background(), request())
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MessageVendorInactive, resp.Message)
	})

	t.Run("no eligible workers", func(t *testing.T) {
		s := newStore()
		s.workers = nil

		resp, err := newUseCase(s, monday).Execute(context.Background(), request())
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MessageNoWorkers, resp.Message)
	})

	t.Run("past date", func(t *testing.T) {
		resp, err := newUseCase(newStore(), monday.AddDate(0, 0, 7)).Execute(context.Background(), request())
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MessagePastDate, resp.Message)
	})

	t.Run("vendor closed that day", func(t *testing.T) {
		req := request()
		req.Date = monday.AddDate(0, 0, 1)

		resp, err := newUseCase(newStore(), monday).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Equal(t, MessageNoSlots, resp.Message)
	})
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(s *store)
		req     *Request
		wantErr error
	}{
		{
			name:    "missing vendor id",
			req:     &Request{ServiceID: "s-1", Date: monday},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     &Request{VendorID: "v-1", ServiceID: "s-1"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty worker id",
			req:     &Request{VendorID: "v-1", ServiceID: "s-1", WorkerID: ptr.Ptr(" "), Date: monday},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown service",
			req:     &Request{VendorID: "v-1", ServiceID: "s-404", Date: monday},
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "inactive service",
			prepare: func(s *store) { s.services["s-1"].IsActive = false },
			req:     request(),
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "service of another vendor",
			prepare: func(s *store) { s.services["s-1"].VendorID = "v-2" },
			req:     request(),
			wantErr: ErrServiceNotFound,
		},
		{
			name: "unknown vendor",
			prepare: func(s *store) {
				s.services["s-1"].VendorID = "v-404"
			},
			req:     &Request{VendorID: "v-404", ServiceID: "s-1", Date: monday},
			wantErr: ErrVendorNotFound,
		},
		{
			name:    "store failure",
			prepare: func(s *store) { s.appointmentsErr = errors.New("connection refused") },
			req:     request(),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore()
			if tt.prepare != nil {
				tt.prepare(s)
			}

			resp, err := newUseCase(s, monday.AddDate(0, 0, -1)).Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}

func TestUseCase_PrecedenceOverVendorHours(t *testing.T) {
	s := newStore()
	s.weekly["w-1|Monday"] = &domain.WorkerAvailability{WorkerID: "w-1", DayOfWeek: 1, StartTime: "12:00", EndTime: "14:00", IsAvailable: true}

	uc := newUseCase(s, monday.AddDate(0, 0, -1))
	first, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	s.vendors["v-1"].OperatingHours["monday"] = domain.DayHours{Open: ptr.Ptr("07:00"), Close: ptr.Ptr("22:00")}
	second, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, types.TimeString("12:00"), first.Slots[0].Time)
}

func TestUseCase_MalformedWeeklyFallsBackToVendorHours(t *testing.T) {
	s := newStore()
	s.weekly["w-1|Monday"] = &domain.WorkerAvailability{WorkerID: "w-1", DayOfWeek: 1, StartTime: "noon", EndTime: "14:00", IsAvailable: true}

	resp, err := newUseCase(s, monday.AddDate(0, 0, -1)).Execute(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, fullDay(), times(resp.Slots))
}

func TestUseCase_Idempotent(t *testing.T) {
	s := newStore()
	s.appointments = []*domain.Appointment{
		{VendorID: "v-1", WorkerID: "w-1", StartTime: at(11, 0), EndTime: at(12, 0), Status: domain.StatusPending},
	}
	uc := newUseCase(s, at(9, 30))

	first, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, types.TimeString("10:30"), first.Slots[0].Time)
}
