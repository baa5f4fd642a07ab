package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
)

var (
	// ErrTransaction возвращается при ошибках начала или фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")

	// ErrSerialization возвращается, когда PostgreSQL отклонил фиксацию SERIALIZABLE транзакции
	// из-за конкурентной записи. Операцию можно повторить
	ErrSerialization = errors.New("txmanager: serialization failure")
)

// serializationFailure код ошибки PostgreSQL serialization_failure
const serializationFailure = "40001"

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в транзакции, передавая её через context.
// Репозитории достают транзакцию через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, nil, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return fmt.Errorf("%w: commit: %v", ErrSerialization, err)
		}
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

// IsSerializationFailure проверяет, что err - ошибка PostgreSQL serialization_failure
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}
