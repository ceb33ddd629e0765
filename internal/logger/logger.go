package logger

import (
	"log/slog"
	"os"
)

// Load builds the process-wide structured logger. Handlers and
// middleware receive it by injection, nothing logs through a global.
func Load() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
