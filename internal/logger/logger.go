package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Level  string
	Output io.Writer
}

var (
	once sync.Once
	lg   *slog.Logger
)

// Init configures the process-wide logger once. Later calls are no-ops.
func Init(cfg Config) {
	once.Do(func() {
		if cfg.Output == nil {
			cfg.Output = os.Stderr
		}
		handler := slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
			Level: parseLevel(cfg.Level),
		})
		lg = slog.New(handler)
		slog.SetDefault(lg)
	})
}

// L returns the configured logger, initializing a default one if needed.
func L() *slog.Logger {
	if lg == nil {
		Init(Config{Level: "info"})
	}
	return lg
}

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
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
