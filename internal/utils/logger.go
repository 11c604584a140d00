// Package utils configures colored structured logging with tint.
package utils

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupLogger installs a tint slog handler as the default logger at the
// level specified by the LOG_LEVEL env var (default: INFO).
func SetupLogger() {
	SetupLoggerWithLevel(levelFromEnv())
}

// SetupLoggerWithLevel installs the default logger at the given level.
func SetupLoggerWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
