// Package logging provides structured JSON logging for dispatch cycles.
// It wraps log/slog so every component logs with the same handler and
// carries cycle attributes (template, mode, folder) through child loggers.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels accepted by New and NewWriter.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger is a slog-backed logger. It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	closer *fileCloser
}

type fileCloser struct {
	mu   sync.Mutex
	file *os.File
}

// New opens (or creates) the log file at path and returns a JSON logger
// writing to it. An empty path logs to stderr.
func New(path, level string) (*Logger, error) {
	if path == "" {
		return NewWriter(os.Stderr, level), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := NewWriter(f, level)
	l.closer = &fileCloser{file: f}
	return l, nil
}

// NewWriter returns a JSON logger writing to w.
func NewWriter(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{logger: slog.New(handler)}
}

// NopLogger returns a Logger that discards everything.
func NopLogger() *Logger {
	return NewWriter(io.Discard, LevelError)
}

// With returns a child logger that adds the key-value pairs to every entry.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{logger: l.logger.With(args...), closer: l.closer}
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }

// Info logs at INFO level.
func (l *Logger) Info(msg string, args ...any) { l.log(slog.LevelInfo, msg, args...) }

// Warn logs at WARN level.
func (l *Logger) Warn(msg string, args ...any) { l.log(slog.LevelWarn, msg, args...) }

// Error logs at ERROR level.
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Log(context.Background(), level, msg, args...)
}

// Close syncs and closes the underlying log file. It is a no-op for
// writer-backed loggers and safe to call more than once.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.closer.mu.Lock()
	defer l.closer.mu.Unlock()

	if l.closer.file == nil {
		return nil
	}
	if err := l.closer.file.Sync(); err != nil {
		return fmt.Errorf("syncing log file: %w", err)
	}
	if err := l.closer.file.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	l.closer.file = nil
	return nil
}

// ValidLevels returns the accepted level names.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// parseLevel defaults to INFO for unknown names.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
