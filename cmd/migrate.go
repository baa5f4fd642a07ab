package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Manage database schema migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			migrator, err := migrations.NewMigrator(db, log)
			if err != nil {
				return err
			}

			switch action {
			case "down":
				return migrator.Down(cmd.Context())
			case "status":
				return migrator.Status(cmd.Context())
			default:
				return migrator.Up(cmd.Context())
			}
		},
	}

	return cmd
}

// openDB открывает пул соединений PostgreSQL и проверяет доступность базы
func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database (host=%s, port=%d, db=%s): %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	return db, nil
}
