// Package log is a thin facade over zap so callers log through a stable,
// context-aware API without holding a logger instance.
package log

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var logger = zap.NewNop()

// Init replaces the process logger. option is "development" for console
// output, anything else means production JSON.
func Init(option, level string) error {
	var cfg zap.Config
	if option == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	logger = l
	return nil
}

// InitForTest installs a no-op logger, keeping test output clean.
func InitForTest() {
	logger = zap.NewNop()
}

func String(key, value string) Field {
	return zap.String(key, value)
}

func Int(key string, value int) Field {
	return zap.Int(key, value)
}

func Time(key string, value time.Time) Field {
	return zap.Time(key, value)
}

func Strings(key string, value []string) Field {
	return zap.Strings(key, value)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Debug(_ context.Context, msg string, fields ...Field) {
	logger.Debug(msg, fields...)
}

func Info(_ context.Context, msg string, fields ...Field) {
	logger.Info(msg, fields...)
}

func Warn(_ context.Context, msg string, fields ...Field) {
	logger.Warn(msg, fields...)
}

func Error(_ context.Context, msg string, fields ...Field) {
	logger.Error(msg, fields...)
}

func Panic(_ context.Context, msg string, fields ...Field) {
	logger.Panic(msg, fields...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(_ context.Context, format string, args ...any) {
	logger.Fatal(fmt.Sprintf(format, args...))
}

// Sync flushes buffered entries, called on shutdown.
func Sync() error {
	return logger.Sync()
}
