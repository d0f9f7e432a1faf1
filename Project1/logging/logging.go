package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name from the command line or config to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// BuildLogger returns a text logger writing to w at the given level.
func BuildLogger(w io.Writer, level slog.Level) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: level == slog.LevelDebug,
		Level:     level,
	}
	return slog.New(slog.NewTextHandler(w, ops))
}

// ErrAttr wraps err in an "error" attribute.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
