// Package availability вычисление рабочего интервала мастера на дату и генерация слотов.
// Пакет не обращается к хранилищу: все данные передаются вызывающей стороной
package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Logger интерфейс для логирования некорректных данных расписания
type Logger interface {
	Warn(format string, v ...interface{})
}

// ScheduleInput источники расписания одного мастера на одну дату
type ScheduleInput struct {
	WorkerID    string
	Date        time.Time                      // Полночь календарной даты в часовом поясе сервиса
	Override    *domain.WorkerScheduleOverride // Исключение на дату (может быть nil)
	Weekly      *domain.WorkerAvailability     // Недельный шаблон на день недели даты (может быть nil)
	VendorHours domain.OperatingHours          // Часы работы салона
}

// ResolveSchedule определяет рабочий интервал мастера на дату.
// Порядок: исключение на дату, затем недельный шаблон, затем часы работы салона.
// Возвращает nil, если мастер в этот день не работает
func ResolveSchedule(in ScheduleInput, log Logger) *domain.EffectiveSchedule {
	// 1. Исключение на дату
	if in.Override != nil {
		o := in.Override
		if o.IsDayOff || o.StartTime == nil || o.EndTime == nil {
			return nil
		}

		schedule, err := anchor(in.Date, *o.StartTime, *o.EndTime)
		if err != nil {
			// Некорректное исключение считается выходным
			log.Warn("ResolveSchedule: worker=%s date=%s: malformed override %q-%q, treating as day off: %v",
				in.WorkerID, in.Date.Format(domain.DateFormat), *o.StartTime, *o.EndTime, err)
			return nil
		}
		return schedule
	}

	// 2. Недельный шаблон
	if in.Weekly != nil {
		w := in.Weekly
		if !w.IsAvailable || w.StartTime == "" || w.EndTime == "" {
			return nil
		}

		schedule, err := anchor(in.Date, w.StartTime, w.EndTime)
		if err == nil {
			return schedule
		}

		// Некорректный шаблон не означает выходной, переходим к часам работы салона
		log.Warn("ResolveSchedule: worker=%s day=%d: malformed weekly availability %q-%q, falling back to vendor hours: %v",
			in.WorkerID, w.DayOfWeek, w.StartTime, w.EndTime, err)
	}

	// 3. Часы работы салона
	hours, ok := in.VendorHours.ForDate(in.Date)
	if !ok || !hours.HasHours() {
		return nil
	}

	schedule, err := anchor(in.Date, *hours.Open, *hours.Close)
	if err != nil {
		log.Warn("ResolveSchedule: worker=%s date=%s: malformed vendor hours %q-%q: %v",
			in.WorkerID, in.Date.Format(domain.DateFormat), *hours.Open, *hours.Close, err)
		return nil
	}
	return schedule
}

// anchor привязывает строки "HH:MM" к календарной дате
func anchor(date time.Time, open, close string) (*domain.EffectiveSchedule, error) {
	openTS, err := types.NewTimeStringFromString(open)
	if err != nil {
		return nil, err
	}
	closeTS, err := types.NewTimeStringFromString(close)
	if err != nil {
		return nil, err
	}

	openTime, err := openTS.On(date)
	if err != nil {
		return nil, err
	}
	closeTime, err := closeTS.On(date)
	if err != nil {
		return nil, err
	}

	return &domain.EffectiveSchedule{OpenTime: openTime, CloseTime: closeTime}, nil
}
