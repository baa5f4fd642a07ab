package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// workerSlots свободные времена одного мастера
type workerSlots struct {
	worker domain.WorkerRef
	times  []types.TimeString
}

// scheduleInput собирает источники расписания мастера на дату
func (uc *UseCase) scheduleInput(ctx context.Context, worker *domain.Worker, date time.Time, vendorHours domain.OperatingHours) (availability.ScheduleInput, error) {
	input := availability.ScheduleInput{
		WorkerID:    worker.ID,
		Date:        date,
		VendorHours: vendorHours,
	}

	override, err := uc.scheduleRepo.GetOverride(ctx, worker.ID, date)
	switch {
	case err == nil:
		input.Override = override
		// Исключение на дату важнее шаблона, шаблон не нужен
		return input, nil
	case !errors.Is(err, scheduleRepo.ErrOverrideNotFound):
		return input, fmt.Errorf("get override: %w", err)
	}

	weekly, err := uc.scheduleRepo.GetWeeklyAvailability(ctx, worker.ID, int(date.Weekday()))
	switch {
	case err == nil:
		input.Weekly = weekly
	case !errors.Is(err, scheduleRepo.ErrAvailabilityNotFound):
		return input, fmt.Errorf("get weekly availability: %w", err)
	}

	return input, nil
}

// groupByWorker раскладывает записи по мастерам
func groupByWorker(appointments []*domain.Appointment) map[string][]*domain.Appointment {
	result := make(map[string][]*domain.Appointment)
	for _, a := range appointments {
		result[a.WorkerID] = append(result[a.WorkerID], a)
	}
	return result
}

// aggregateSlots объединяет слоты мастеров по времени.
// Мастера внутри слота идут в порядке perWorker, слоты отсортированы по времени
func aggregateSlots(perWorker []workerSlots) []Slot {
	byTime := make(map[types.TimeString]*Slot)
	order := make([]types.TimeString, 0)

	for _, ws := range perWorker {
		for _, t := range ws.times {
			slot, ok := byTime[t]
			if !ok {
				slot = &Slot{Time: t, AvailableWorkers: make([]domain.WorkerRef, 0, 1)}
				byTime[t] = slot
				order = append(order, t)
			}
			slot.AvailableWorkers = append(slot.AvailableWorkers, ws.worker)
		}
	}

	// "HH:MM" с ведущими нулями сортируется лексикографически
	sort.Slice(order, func(i, j int) bool {
		return order[i] < order[j]
	})

	result := make([]Slot, 0, len(order))
	for _, t := range order {
		result = append(result, *byTime[t])
	}
	return result
}
