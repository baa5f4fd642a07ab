// Package config загружает конфигурацию сервиса из TOML файла и переменных окружения
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки генерации слотов
type BookingConfig struct {
	SlotIntervalMinutes     int    `toml:"slot_interval_minutes"`
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	Timezone                string `toml:"timezone"` // IANA, например "Europe/Moscow"
}

// Policy собирает domain.BookingPolicy
func (b BookingConfig) Policy() (domain.BookingPolicy, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return domain.BookingPolicy{}, fmt.Errorf("load timezone %q: %w", b.Timezone, err)
	}

	policy := domain.BookingPolicy{
		SlotIntervalMinutes:     b.SlotIntervalMinutes,
		MinBookingNoticeMinutes: b.MinBookingNoticeMinutes,
		Location:                loc,
	}

	if err := policy.Validate(); err != nil {
		return domain.BookingPolicy{}, err
	}

	return policy, nil
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Booking: BookingConfig{
			SlotIntervalMinutes:     domain.DefaultSlotIntervalMinutes,
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
			Timezone:                domain.DefaultTimezone,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем TOML файл, затем .env и переменные окружения.
// Отсутствие файла конфигурации не является ошибкой
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	// .env не обязателен, уже выставленные переменные окружения не перезаписываются
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("BOOKING_TIMEZONE"); v != "" {
		c.Booking.Timezone = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be between 1 and 65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path)
	}
	if _, err := c.Booking.Policy(); err != nil {
		return fmt.Errorf("booking: %w", err)
	}
	return nil
}
