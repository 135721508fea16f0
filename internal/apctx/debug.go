package apctx

import (
	"context"
)

const debugModeKey = "debugMode"

// WithDebugMode marks the context so that error responses include internal details.
func WithDebugMode(ctx context.Context, debug bool) context.Context {
	return context.WithValue(ctx, debugModeKey, debug)
}

func IsDebugMode(ctx context.Context) bool {
	debug, _ := ctx.Value(debugModeKey).(bool)
	return debug
}
