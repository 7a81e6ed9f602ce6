package swrcache_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/vearutop/swrcache"
)

func ExampleNew() {
	// Create cache instance.
	c := swrcache.New(swrcache.Config[[]int]{
		Name:   "dogs",
		Logger: ctxd.NoOpLogger{},
		Stats:  &stats.TrackerMock{},
		Store:  swrcache.NewShardedMapStore[[]int](),

		// Failed loads are retried after this cool-down.
		FailedUpdateTTL: 5 * time.Second,
	})

	// Use context if available.
	ctx := context.TODO()

	val := c.GetOrAdd(ctx, "my-key", func(ctx context.Context, key string) (swrcache.Entry[[]int], error) {
		return swrcache.MakeEntry([]int{1, 2, 3}, time.Now().Add(13*time.Minute)), nil
	})
	fmt.Printf("%v", val)

	// Output:
	// [1 2 3]
}

func ExampleLoggerFunc() {
	c := swrcache.New(swrcache.Config[string]{
		Logger: swrcache.LoggerFunc(func(message string, err error) {
			fmt.Println(message, err != nil)
		}),
	})

	val := c.GetOrAdd(context.TODO(), "my-key", func(ctx context.Context, key string) (swrcache.Entry[string], error) {
		return swrcache.Entry[string]{}, errors.New("upstream is down")
	})
	fmt.Printf("value: %q\n", val)

	// Output:
	// cache miss false
	// building cache value false
	// failed to load cache value, serving fallback true
	// wrote to cache false
	// value: ""
}

func ExampleCache_GetOrAddAsync() {
	clk := newClock()
	c := swrcache.New(swrcache.Config[string]{TimeNow: clk.Now})

	var builds int64

	loader := func(ctx context.Context, key string) *swrcache.Future[string] {
		n := atomic.AddInt64(&builds, 1)

		return swrcache.NewFuture(func() (swrcache.Entry[string], error) {
			return swrcache.MakeEntry(fmt.Sprintf("%s value %d", key, n), clk.Now().Add(5*time.Second)), nil
		})
	}

	// Missing value waits for the future.
	fmt.Println(c.GetOrAddAsync(context.TODO(), "1", loader))

	// Fresh value is served from cache.
	clk.Add(3 * time.Second)
	fmt.Println(c.GetOrAddAsync(context.TODO(), "1", loader))

	// Stale value is served while refresh runs in background.
	clk.Add(3 * time.Second)
	fmt.Println(c.GetOrAddAsync(context.TODO(), "1", loader))

	for c.GetOrAddAsync(context.TODO(), "1", loader) == "1 value 1" {
		time.Sleep(time.Millisecond)
	}

	fmt.Println(c.GetOrAddAsync(context.TODO(), "1", loader))

	// Output:
	// 1 value 1
	// 1 value 1
	// 1 value 1
	// 1 value 2
}
