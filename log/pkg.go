package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// defaultLog is the package-level default logger. It writes to stderr so
// that log output never pollutes the inventory document on stdout.
//
//nolint:gochecknoglobals
var (
	defaultLog   = Make(os.Stderr)
	defaultMutex sync.RWMutex
)

// Default returns the package-level default logger.
func Default() Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultLog
}

// Config reconfigures the package-level default logger by applying the given
// options on top of its current configuration.
func Config(opts ...Option) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// Trace logs a message at Trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().TraceContext(context.Background(), msg, attrs...)
}

// TraceContext logs a message at Trace level using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().DebugContext(context.Background(), msg, attrs...)
}

// DebugContext logs a message at Debug level using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().InfoContext(context.Background(), msg, attrs...)
}

// InfoContext logs a message at Info level using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().WarnContext(context.Background(), msg, attrs...)
}

// WarnContext logs a message at Warn level using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().ErrorContext(context.Background(), msg, attrs...)
}

// ErrorContext logs a message at Error level using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}
