package verify

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with verifier-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithType adds the integer representation under test.
func (l *Logger) WithType(typ string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", typ),
	}
}

// WithOp adds the operator under test.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", string(op)),
	}
}

// LogSweep logs the end of a sweep over one operator.
func (l *Logger) LogSweep(ctx context.Context, cases uint64, mismatches uint64, elapsed time.Duration) {
	if mismatches > 0 {
		l.ErrorContext(ctx, "sweep found mismatches",
			"cases", cases,
			"mismatches", mismatches,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"cases", cases,
			"elapsed", elapsed,
		)
	}
}

// LogMismatch logs a single disagreement with the oracle.
func (l *Logger) LogMismatch(ctx context.Context, m Mismatch) {
	l.WarnContext(ctx, "mismatch",
		"a", m.A,
		"b", m.B,
		"want", m.Want,
		"got", m.Got,
	)
}

// LogProgress logs how far a sweep has advanced.
func (l *Logger) LogProgress(ctx context.Context, done, total uint64) {
	l.DebugContext(ctx, "sweep progress",
		"done", done,
		"total", total,
	)
}

// LogRun logs the end of a run over one representation.
func (l *Logger) LogRun(ctx context.Context, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"elapsed", elapsed,
		)
	}
}
