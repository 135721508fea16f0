package apctx

import "context"

type valueApplier struct {
	key   string
	value interface{}
}

func (va *valueApplier) ContextWith(ctx context.Context) context.Context {
	return context.WithValue(ctx, va.key, va.value)
}

// Set wraps an arbitrary key and value so it can be used in Builder.With(...) chaining.
func Set(key string, value interface{}) WithApplier {
	return &valueApplier{key, value}
}
