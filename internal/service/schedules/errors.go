package schedules

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrOverrideNotFound возвращается, когда исключения на дату нет
	ErrOverrideNotFound = errors.New("schedule override not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
