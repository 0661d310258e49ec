package kmeans

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with kmeans-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithEngine adds the engine ID field to the logger.
func (l *Logger) WithEngine(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("engine", id.String()),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogStep logs a single partition/update step.
func (l *Logger) LogStep(ctx context.Context, step int, converged bool, sizes []int) {
	l.DebugContext(ctx, "step completed",
		"step", step,
		"converged", converged,
		"cluster_sizes", sizes,
	)
}

// LogRun logs a run to convergence or step budget exhaustion.
func (l *Logger) LogRun(ctx context.Context, stats RunStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"steps", stats.Steps,
			"error", err,
		)
	} else if stats.Converged {
		l.InfoContext(ctx, "run converged",
			"steps", stats.Steps,
		)
	} else {
		l.InfoContext(ctx, "run exhausted step budget",
			"steps", stats.Steps,
		)
	}
}
