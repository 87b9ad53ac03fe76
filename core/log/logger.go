// Package log provides an interface to setup logging when using the collections in this module.
package log

import (
	"fmt"
	"io"
	"time"
)

//go:generate mockgen -destination=../../testutil/mock_logger.go -package=testutil github.com/heapworks/collections/core/log Logger

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// nopLogger discards everything it's given.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}

// WriterLogger is a Logger which prints each statement on its own line to the wrapped writer, prefixed with a
// timestamp and the level.
type WriterLogger struct {
	Writer io.Writer

	// Now returns the timestamp used for each line, defaults to 'time.Now'.
	Now func() time.Time
}

// Log formats and writes the given statement.
func (w WriterLogger) Log(level Level, format string, args ...any) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	fmt.Fprintf(w.Writer, "%s %s: %s\n", now().UTC().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}

// WrappedLogger is used internally by the collections, it provides leveled helpers on top of a user supplied Logger.
type WrappedLogger struct {
	Logger
}

// NewWrappedLogger returns a WrappedLogger for the given Logger, a nil Logger results in all output being discarded.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger}
}

// Tracef logs the provided information at the trace level.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.Log(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.Log(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func (w *WrappedLogger) Infof(format string, args ...any) {
	w.Log(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.Log(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.Log(LevelError, format, args...)
}
