// Package logger printf-логгер поверх zap
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger логгер с printf-интерфейсом
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// New создает логгер. Пишет в stdout и, если file не пустой, дополнительно в файл.
// level: debug, info, warn, error
func New(file, level string) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{base: base, sugar: base.Sugar()}, nil
}

// NewNop возвращает логгер, который ничего не пишет
func NewNop() *Logger {
	base := zap.NewNop()
	return &Logger{base: base, sugar: base.Sugar()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Println нужен для handlers.RecoveryLogger (паники HTTP обработчиков)
func (l *Logger) Println(v ...interface{}) {
	l.sugar.Error(fmt.Sprintln(v...))
}

// Close сбрасывает буферы
func (l *Logger) Close() error {
	// Sync на stdout возвращает EINVAL на части систем, это не ошибка
	_ = l.base.Sync()
	return nil
}
