// Package logging configures the process-wide slog logger. Diagnostics go to
// stderr so they never mix with the report on stdout.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Init creates a text handler on w at the given level and installs it as the
// default logger. The logger is returned for callers that prefer to pass it.
func Init(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
