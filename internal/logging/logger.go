// Package logging provides the leveled stderr logger used by the fleas tools.
// Report output goes to stdout; everything written here is diagnostic.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is a custom slog level below Debug that adds one record per trial.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
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

// CheckLevel reports whether s names a level ParseLevel understands. The
// empty string is accepted and means info.
func CheckLevel(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info", "trace", "debug", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %q (want info, debug, trace, warn or error)", s)
}

// NewLogger creates a leveled slog.Logger writing text records to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
