package create_booking

import "errors"

var (
	// ErrVendorNotFound возвращается, когда салон не найден
	ErrVendorNotFound = errors.New("create_booking: vendor not found")

	// ErrVendorInactive возвращается, когда салон не принимает записи
	ErrVendorInactive = errors.New("create_booking: vendor is not accepting bookings")

	// ErrServiceNotFound возвращается, когда услуга не найдена, неактивна или принадлежит другому салону
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrWorkerNotFound возвращается, когда мастер не найден в салоне
	ErrWorkerNotFound = errors.New("create_booking: worker not found")

	// ErrWorkerNotEligible возвращается, когда мастер не выполняет услугу
	ErrWorkerNotEligible = errors.New("create_booking: worker does not provide this service")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrWorkerUnavailable возвращается, когда мастер не работает в эту дату
	ErrWorkerUnavailable = errors.New("create_booking: worker is not working on this date")

	// ErrInvalidTimeSlot возвращается, когда время не на сетке слотов или услуга не помещается в рабочие часы
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда до начала записи меньше минимального времени
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда мастер уже занят в это время
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
