package test_utils

import (
	"log/slog"
	"os"
)

// NewTestLogger logs errors only, so failing tests show what went wrong without drowning passing ones.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelError,
		AddSource: true,
	}))
}
