// Package logger configures the process-wide slog logger. Development
// gets colorized tint output; anything else logs JSON for ingestion.
package logger

import (
    "log/slog"
    "os"
    "strings"
    "time"

    "github.com/lmittmann/tint"
)

// New builds the application logger and installs it as slog's default.
// env selects the output format, LOG_LEVEL the minimum level.
func New(env string) *slog.Logger {
    level := parseLevel(os.Getenv("LOG_LEVEL"))

    var handler slog.Handler
    if env == "dev" {
        handler = tint.NewHandler(os.Stdout, &tint.Options{
            Level:      level,
            TimeFormat: time.DateTime,
        })
    } else {
        handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
    }

    log := slog.New(handler)
    slog.SetDefault(log)
    return log
}

func parseLevel(s string) slog.Level {
    switch strings.ToLower(s) {
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
