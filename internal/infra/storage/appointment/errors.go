package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrCannotCancel возвращается, когда запись уже не в статусе PENDING или CONFIRMED
	ErrCannotCancel = errors.New("appointment.repository: appointment cannot be cancelled")

	// ErrStatusConflict возвращается, когда статус записи изменился до обновления
	ErrStatusConflict = errors.New("appointment.repository: appointment status has changed")

	// ErrSerialization возвращается, когда конкурентная SERIALIZABLE транзакция изменила те же данные
	ErrSerialization = errors.New("appointment.repository: concurrent update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
