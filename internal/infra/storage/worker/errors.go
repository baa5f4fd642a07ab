package worker

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("worker.repository: worker not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("worker.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("worker.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("worker.repository: failed to scan row")
)
