// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.arvo.ch/waymark/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	// Text handler on stderr, per 12-factor app guidelines.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// NewWithOutput creates a Logger writing to the given writer. Used by tests
// and by the client CLI when a progress renderer owns the terminal.
func NewWithOutput(w io.Writer) ports.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	// Replacing the slog.Logger instance needs the lock; the log methods
	// take the read lock. A RWMutex is fine at this call volume.
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Named returns a child logger with a "method" attribute. The route guide
// keeps one named logger per RPC method, so every log line carries the
// method it belongs to.
func (l *Logger) Named(name string) ports.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{
		logger: l.logger.With(slog.String("method", name)),
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
