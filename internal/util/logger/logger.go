package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	loggerInstance *slog.Logger
	once           sync.Once
)

// GetLogger returns the process-wide logger. Production mode (read straight
// from ENV_MODE, config depends on this package) switches to JSON output.
func GetLogger() *slog.Logger {
	once.Do(func() {
		options := &slog.HandlerOptions{Level: slog.LevelInfo}

		var handler slog.Handler
		if os.Getenv("ENV_MODE") == "production" {
			handler = slog.NewJSONHandler(os.Stdout, options)
		} else {
			handler = slog.NewTextHandler(os.Stdout, options)
		}

		loggerInstance = slog.New(handler)
	})

	return loggerInstance
}
