// Package logging provides structured JSON logging for roadmap runs.
// It wraps log/slog; child loggers created with With* share the writer.
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

const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogFileName is created inside the log directory.
const LogFileName = "roadmap.log"

// Logger is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	file   *os.File
	mu     *sync.Mutex // protects file, shared with children
}

// NewLogger writes to {dir}/roadmap.log, or to stderr when dir is empty.
// Unknown levels fall back to INFO.
func NewLogger(dir string, level string) (*Logger, error) {
	if dir == "" {
		return NewLoggerTo(os.Stderr, level),
			nil
	}

	if errMkdir := os.MkdirAll(dir, 0755); errMkdir != nil {
		return nil,
			fmt.Errorf("failed to create log directory: %w", errMkdir)
	}

	file, errOpen := os.OpenFile(
		filepath.Join(dir, LogFileName),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if errOpen != nil {
		return nil,
			fmt.Errorf("failed to open log file: %w", errOpen)
	}

	result := NewLoggerTo(file, level)
	result.file = file

	return result,
		nil
}

func NewLoggerTo(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(
		w,
		&slog.HandlerOptions{
			Level: parseLevel(level),
		},
	)

	return &Logger{
		logger: slog.New(handler),
		mu:     &sync.Mutex{},
	}
}

// NopLogger discards everything.
func NopLogger() *Logger {
	return NewLoggerTo(io.Discard, LevelError)
}

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

// ValidLevels lists accepted level strings, case insensitive.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// With returns a child logger carrying alternating key-value attributes.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}

	return &Logger{
		logger: l.logger.With(args...),
		file:   l.file,
		mu:     l.mu,
	}
}

// WithPhase tags entries with the stage of a run, e.g. "load", "schedule", "render".
func (l *Logger) WithPhase(phase string) *Logger {
	return l.With("phase", phase)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Log(context.Background(), slog.LevelWarn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Log(context.Background(), slog.LevelError, msg, args...)
}

// Close syncs and closes the log file, a no-op for writer backed loggers.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	if errSync := l.file.Sync(); errSync != nil {
		return fmt.Errorf("failed to sync log file: %w", errSync)
	}

	if errClose := l.file.Close(); errClose != nil {
		return fmt.Errorf("failed to close log file: %w", errClose)
	}

	l.file = nil

	return nil
}
