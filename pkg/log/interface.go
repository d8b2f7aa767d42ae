// Package log provides the structured logging interface used by coordfit.
//
// The Logger interface mirrors the key-value calling convention of log/slog
// so that library code never depends on a concrete backend. The default
// backend is zerolog (see NewZerologLogger); library packages fall back to
// GetLogger, which discards everything until SetLogger is called.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "HillClimbRegression",
//	    log.ComponentKey, "tuning",
//	)
//	logger.Info("Tuning started",
//	    log.OperationKey, log.OperationTune,
//	    log.SamplesKey, 4,
//	    log.FeaturesKey, 3,
//	)
package log

import (
	"context"
	"strings"
	"sync"

	"github.com/YuminosukeSato/coordfit/pkg/errors"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key-value pairs. Error additionally accepts an
// error value as its first field; implementations attach the error and its
// stack trace to the record.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message.
	//
	// Example:
	//   logger.Error("Tuning failed",
	//       err,
	//       log.OperationKey, log.OperationTune,
	//   )
	Error(msg string, fields ...any)

	// With returns a Logger that includes the given fields in every record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Callers use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("log-level", "must be one of debug, info, warn, error", s)
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = nopLogger{}
)

// GetLogger returns the process-wide logger. It is a no-op logger until
// SetLogger is called.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide logger. A nil logger restores the no-op logger.
func SetLogger(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if l == nil {
		l = nopLogger{}
	}
	defaultLogger = l
}

// Nop returns a Logger that discards every record.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                {}
func (nopLogger) Info(string, ...any)                 {}
func (nopLogger) Warn(string, ...any)                 {}
func (nopLogger) Error(string, ...any)                {}
func (n nopLogger) With(...any) Logger                { return n }
func (nopLogger) Enabled(context.Context, Level) bool { return false }
