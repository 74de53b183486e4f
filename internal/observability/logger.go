package observability

import (
	"log/slog"
	"os"
)

// logger is the package-level logger: JSON to stderr, so diagnostics never
// mix with command output.
var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// Init rebuilds the shared logger at the given level.
func Init(level slog.Level) {
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
