package simclust

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simclust-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithClusters adds a clusters field to the logger.
func (l *Logger) WithClusters(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("clusters", k),
	}
}

// WithDimension adds a dimension (column count) field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithRows adds a rows field to the logger.
func (l *Logger) WithRows(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", n),
	}
}

// LogStep logs a refinement step.
func (l *Logger) LogStep(ctx context.Context, step, changed int, mse float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"step", step,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "step completed",
			"step", step,
			"changed", changed,
			"mse", mse,
		)
	}
}

// LogFit logs a fit loop.
func (l *Logger) LogFit(ctx context.Context, steps int, converged bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "fit failed",
			"steps", steps,
			"error", err,
		)
	case !converged:
		l.WarnContext(ctx, "fit stopped before convergence",
			"steps", steps,
		)
	default:
		l.InfoContext(ctx, "fit converged",
			"steps", steps,
		)
	}
}
