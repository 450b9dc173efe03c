package config

import (
	"log/slog"
	"os"
	"strings"
)

var logLevels = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// SetLogLevel sets the log level for the application from the LOG_LEVEL
// environment variable, defaulting to info.
func SetLogLevel() {
	level := slog.LevelInfo

	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		parsed, ok := logLevels[strings.ToUpper(envLevel)]
		if !ok {
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
		level = parsed
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
