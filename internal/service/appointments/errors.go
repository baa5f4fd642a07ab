package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrVendorNotFound возвращается, когда салон не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict возвращается, когда статус записи изменился параллельно
	ErrStatusConflict = errors.New("appointment status was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
