// internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger: общий структурированный логгер. Безопасен для конкурентного использования.
var Logger = slog.Default()

// Init настраивает slog: текстовый вывод в stdout, уровень из LOG_LEVEL
// (debug|info|warn|error), с позицией в исходнике. Становится логгером по умолчанию.
func Init() *slog.Logger {
	return InitWith(os.Stdout, os.Getenv("LOG_LEVEL"))
}

// InitWith is Init with an explicit writer and level name.
func InitWith(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
	return Logger
}

// ParseLevel maps a level name to slog; unknown names mean info.
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
