package fastrsqrt

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fastrsqrt-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithIterations adds the Newton iteration count to the logger.
func (l *Logger) WithIterations(iterations int) *Logger {
	return &Logger{
		Logger: l.Logger.With("iterations", iterations),
	}
}

// LogReject logs a vector skipped by a batch normalization.
func (l *Logger) LogReject(ctx context.Context, index int, err error) {
	l.DebugContext(ctx, "vector rejected",
		"index", index,
		"error", err,
	)
}

// LogBatch logs a completed batch normalization.
func (l *Logger) LogBatch(ctx context.Context, total, rejected int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch normalize failed",
			"total", total,
			"error", err,
		)
	case rejected > 0:
		l.WarnContext(ctx, "batch normalize completed with rejects",
			"total", total,
			"rejected", rejected,
			"normalized", total-rejected,
		)
	default:
		l.InfoContext(ctx, "batch normalize completed",
			"total", total,
		)
	}
}
