package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Log = slog.Default()

// Init builds the process logger and installs it as the slog default.
func Init(level, format string) *slog.Logger {
	Log = New(os.Stderr, level, format)
	slog.SetDefault(Log)
	Log.Info("Logger initialized", "level", level, "format", format)
	return Log
}

func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Discard is used by tests that do not care about log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
