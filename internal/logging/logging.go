// Package logging wraps log/slog with the handful of helpers the dashboard
// and CLI share.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog.Logger for structured logging throughout the application
type Logger struct {
	*slog.Logger
}

// New creates a logger writing to w. format is "text" or "json".
func New(w io.Writer, format, level string, debug bool) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level, debug)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewFile creates a logger appending to path. The returned closer closes the
// file. The dashboard uses this because the terminal belongs to the TUI.
func NewFile(path, format, level string, debug bool) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, format, level, debug), f, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithComponent returns a logger with a component field pre-set
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
	}
}

// LogRequestError logs a failed request to the monitor server.
func (l *Logger) LogRequestError(endpoint string, err error) {
	l.Warn("request failed",
		"endpoint", endpoint,
		"error", err.Error(),
	)
}

func parseLevel(level string, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
