// Package cmd CLI сервиса: запуск HTTP сервера и управление миграциями
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "salon-booking",
		Short:         "Salon booking service: worker schedules, available slots and appointments",
		Version:       fmt.Sprintf("%s (%s)", Version, CommitSHA),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to TOML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap загружает конфигурацию и создает логгер
func bootstrap(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, log, nil
}
