// Package logging provides the engine's structured logging service built on
// log/slog, with package-level helpers that fall back to a console logger
// when the service has not been initialized.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// LoggingService wraps the configured slog logger.
type LoggingService struct {
	Logger *slog.Logger
}

// DefaultLoggingService is the process-wide logging service. Library callers
// that never initialize it get the stderr fallback at the default level.
var DefaultLoggingService *LoggingService

// InitLogger initializes the global logger instance at the given level
// ("debug", "info", "warn", "error").
func InitLogger(level string) {
	DefaultLoggingService = &LoggingService{
		Logger: SetupLogger(level),
	}
	slog.SetDefault(DefaultLoggingService.Logger)
}

// SetupLogger builds a text handler on stderr at the given level. Unknown
// levels fall back to info.
func SetupLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fallback returns a console logger for use before initialization.
func fallback(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		fallback(slog.LevelInfo).Info(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		fallback(slog.LevelError).Error(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Error(msg, args...)
}

func Warn(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		fallback(slog.LevelWarn).Warn(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		fallback(slog.LevelDebug).Debug(msg, args...)
		return
	}
	DefaultLoggingService.Logger.Debug(msg, args...)
}
