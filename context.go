package swrcache

import "context"

type skipReadCtxKey struct{}

// WithSkipRead returns context with cache read ignored.
//
// With such context GetOrAdd loads value synchronously under key lock even if fresh value is cached.
// Stale value is still served if loader fails.
func WithSkipRead(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipReadCtxKey{}, true)
}

// SkipRead returns true if cache read is ignored in context.
func SkipRead(ctx context.Context) bool {
	_, ok := ctx.Value(skipReadCtxKey{}).(bool)

	return ok
}
