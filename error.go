package swrcache

import "fmt"

// SentinelError is an error.
type SentinelError string

const (
	// ErrLoaderPanic indicates the loader panicked instead of returning.
	ErrLoaderPanic = SentinelError("loader panicked")

	// ErrNilFuture indicates an asynchronous loader returned no future.
	ErrNilFuture = SentinelError("loader returned nil future")

	// ErrNothingToInvalidate indicates no caches were added to Invalidator.
	ErrNothingToInvalidate = SentinelError("nothing to invalidate")

	// ErrAlreadyInvalidated indicates recent invalidation.
	ErrAlreadyInvalidated = SentinelError("already invalidated")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}

// LoaderError describes a failed load of a cache key.
//
// It is only ever reported to the logger, GetOrAdd callers receive a fallback value instead.
type LoaderError struct {
	Key string
	// Background is true if the failure happened during a background refresh.
	Background bool
	Err        error
}

// Error implements error.
func (e LoaderError) Error() string {
	if e.Background {
		return fmt.Sprintf("refresh %q: %v", e.Key, e.Err)
	}

	return fmt.Sprintf("load %q: %v", e.Key, e.Err)
}

// Unwrap returns the loader error.
func (e LoaderError) Unwrap() error {
	return e.Err
}
