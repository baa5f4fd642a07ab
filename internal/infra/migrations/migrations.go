// Package migrations применяет схему базы данных через goose из встроенных SQL файлов
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const (
	dialect = "postgres"
	dir     = "sql"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обертка над goose
type Migrator struct {
	db     *sql.DB
	logger Logger
}

// NewMigrator создает мигратор со встроенными миграциями
func NewMigrator(db *sql.DB, logger Logger) (*Migrator, error) {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Up применяет все непримененные миграции
func (m *Migrator) Up(ctx context.Context) error {
	m.logger.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Migrations applied, schema version=%d", version)
	return nil
}

// Down откатывает последнюю миграцию
func (m *Migrator) Down(ctx context.Context) error {
	m.logger.Info("Rolling back the last migration...")

	if err := goose.DownContext(ctx, m.db, dir); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}

	return nil
}

// Status выводит состояние миграций в лог goose
func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, dir); err != nil {
		return fmt.Errorf("migrations status: %w", err)
	}
	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}
