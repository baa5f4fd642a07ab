// Package dbmetrics оборачивает *sql.DB сбором метрик и передает активную транзакцию через context
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultPoolStatsInterval период публикации статистики пула соединений
const DefaultPoolStatsInterval = 15 * time.Second

// DBExecutor минимальный интерфейс для выполнения запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx, *DB и *Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxExecutor транзакция с возможностью выполнения запросов
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// Recorder приемник метрик базы данных
type Recorder interface {
	ObserveDBQuery(operation string, err error, duration time.Duration)
	SetDBPoolStats(stats sql.DBStats)
}

type txKey struct{}

// WithTx кладет транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok {
		return tx
	}
	return db
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok
}

// DB обертка над *sql.DB с записью метрик
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение. recorder может быть nil - тогда метрики не пишутся
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает соединение и запускает периодическую публикацию статистики пула
// до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	if recorder != nil {
		go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	}
	return wrapped
}

// ExecContext выполняет запрос без возврата строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, start)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, start)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, row.Err(), start)
	return row
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: d}, nil
}

// PingContext проверяет соединение
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) observe(query string, err error, start time.Time) {
	if d.recorder == nil {
		return
	}
	d.recorder.ObserveDBQuery(operationName(query), err, time.Since(start))
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recorder.SetDBPoolStats(d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.recorder.SetDBPoolStats(d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// Tx транзакция с записью метрик
type Tx struct {
	tx *sql.Tx
	db *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(query, err, start)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(query, err, start)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, row.Err(), start)
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// operationName возвращает первое ключевое слово запроса (SELECT, INSERT, ...)
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
