package flywheel

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	logger   *slog.Logger
	levelVar = &slog.LevelVar{}
)

// Logger returns the package logger, a text handler on stderr whose level is
// controlled by SetLogLevel.
func Logger() *slog.Logger {
	if logger == nil {
		logger = NewLogger(os.Stderr)
	}
	return logger
}

// NewLogger returns a logger writing text records to w at the package level.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	})
	return slog.New(handler).With("component", "flywheel")
}

// SetLogLevel sets the level of loggers created by this package.
func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetRawLogLevel sets the level from a name: debug, info, warn or error.
// Unknown names select info.
func SetRawLogLevel(raw string) {
	levelVar.Set(parseLogLevel(raw))
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
