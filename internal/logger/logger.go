package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/polkiloo/paymentoptimizer/internal/config"
)

// New creates a JSON slog.Logger writing to stderr, keeping stdout for the report.
func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg.LogLevel)
}

// NewWithWriter creates a JSON slog.Logger with the given level name.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler)
}

// ParseLevel maps level names to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
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
