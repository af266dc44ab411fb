package bitops

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/hupe1980/bitops/internal/simd"
)

// Logger wraps slog.Logger with bitops-specific helpers.
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
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogAlloc logs a bitmap allocation.
func (l *Logger) LogAlloc(ctx context.Context, nbits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bitmap alloc failed",
			"nbits", nbits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bitmap allocated",
			"nbits", nbits,
			"words", WordsFor(nbits),
		)
	}
}

// LogCapabilities logs the word width and the active kernel family.
func (l *Logger) LogCapabilities(ctx context.Context) {
	l.InfoContext(ctx, "bitops capabilities",
		"word_bits", WordBits,
		"kernel", simd.ActiveKernel().String(),
		"kernel_override", simd.IsOverridden(),
		"popcnt", simd.HasPOPCNT(),
	)
}

var pkgLogger atomic.Pointer[Logger]

func init() {
	pkgLogger.Store(NoopLogger())
}

// SetLogger installs l as the package logger and reports the active
// capabilities through it. A nil l restores the no-op logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger.Store(l)
	l.LogCapabilities(context.Background())
}

func logger() *Logger {
	return pkgLogger.Load()
}
