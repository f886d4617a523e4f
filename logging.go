package recipepairs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging installs a text slog handler on stderr as the default logger and returns it.
// level accepts "debug", "info", "warn" or "error"; anything else means info.
func SetupLogging(level string) *slog.Logger {
	return setupLogging(os.Stderr, level)
}

func setupLogging(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
