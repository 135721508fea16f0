package aplog

import (
	"log/slog"
	"sync"
)

var defaultOnce = sync.Once{}

// SetDefaultLog installs the logger as the slog default. Only the first call has any effect.
func SetDefaultLog(logger *slog.Logger) {
	if logger == nil {
		return
	}

	defaultOnce.Do(func() {
		slog.SetDefault(logger)
	})
}
