package worker

import "github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (*dbmetrics.DB или транзакция)
type DBExecutor = dbmetrics.DBExecutor
