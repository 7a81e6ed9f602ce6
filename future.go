package swrcache

import (
	"fmt"
	"sync"
)

// Future is a pending result of an asynchronous loader.
type Future[V any] struct {
	done  chan struct{}
	once  sync.Once
	entry Entry[V]
	err   error
}

// Completed returns a future that is already resolved.
func Completed[V any](entry Entry[V], err error) *Future[V] {
	f := &Future[V]{done: make(chan struct{})}
	f.resolve(entry, err)

	return f
}

// NewPromise returns a pending future and a function to resolve it.
//
// Only the first call of resolve has effect.
func NewPromise[V any]() (*Future[V], func(entry Entry[V], err error)) {
	f := &Future[V]{done: make(chan struct{})}

	return f, f.resolve
}

// NewFuture runs fn in a new goroutine and returns its future.
//
// Panic in fn resolves the future with ErrLoaderPanic.
func NewFuture[V any](fn func() (Entry[V], error)) *Future[V] {
	f, resolve := NewPromise[V]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resolve(Entry[V]{}, fmt.Errorf("%w: %v", ErrLoaderPanic, r))
			}
		}()

		resolve(fn())
	}()

	return f
}

// Done is closed when future is resolved.
func (f *Future[V]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until future is resolved and returns its result.
func (f *Future[V]) Wait() (Entry[V], error) {
	<-f.done

	return f.entry, f.err
}

func (f *Future[V]) resolve(entry Entry[V], err error) {
	f.once.Do(func() {
		f.entry = entry
		f.err = err
		close(f.done)
	})
}
