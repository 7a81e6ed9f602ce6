package swrcache

import (
	"context"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// Loader builds cache entry for a key.
type Loader[V any] func(ctx context.Context, key string) (Entry[V], error)

// AsyncLoader starts building cache entry for a key and returns its future.
type AsyncLoader[V any] func(ctx context.Context, key string) *Future[V]

// Config is optional configuration for New.
type Config[V any] struct {
	// Name is added to logs and stats.
	Name string

	// Store keeps cache entries, NewSyncMapStore is used by default.
	//
	// Store can be pre-populated, its entries are served as if they were loaded.
	Store Store[V]

	// Logger collects messages with context, use LoggerFunc to adapt a callback.
	Logger ctxd.Logger

	// Stats tracks stats.
	Stats stats.Tracker

	// FailedUpdateTTL is a cool-down after failed load, default 10s.
	//
	// Fallback value is served as fresh during cool-down, loader is not invoked.
	FailedUpdateTTL time.Duration

	// RefreshTimeout is a duration after which an unfinished background refresh gives up its claim
	// and another refresh can be started, default 0 (refresh is never reclaimed).
	RefreshTimeout time.Duration

	// TimeNow is a clock, default time.Now.
	TimeNow func() time.Time
}

// Cache serves cached values and refreshes expired values in background.
//
// Please use New to create instance.
type Cache[V any] struct {
	store  Store[V]
	locks  keyLocks
	config Config[V]
	log    ctxd.Logger
	stat   stats.Tracker
	now    func() time.Time
}

// New creates a Cache instance with optional configuration (only first argument is used).
func New[V any](cfg ...Config[V]) *Cache[V] {
	config := Config[V]{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	if config.FailedUpdateTTL <= 0 {
		config.FailedUpdateTTL = DefaultFailedUpdateTTL
	}

	c := &Cache[V]{
		store:  config.Store,
		locks:  newKeyLocks(),
		config: config,
		log:    config.Logger,
		stat:   config.Stats,
		now:    config.TimeNow,
	}

	if c.store == nil {
		c.store = NewSyncMapStore[V]()
	}

	if c.log == nil {
		c.log = ctxd.NoOpLogger{}
	}

	if c.stat == nil {
		c.stat = stats.NoOp{}
	}

	if c.now == nil {
		c.now = time.Now
	}

	return c
}

// GetOrAdd returns cached value or value built by loader.
//
// Missing value is built synchronously, concurrent calls for the same key wait for single build.
// Expired value is returned immediately while a single background refresh is started.
// Loader errors are never returned, see Config.FailedUpdateTTL.
func (c *Cache[V]) GetOrAdd(ctx context.Context, key string, loader Loader[V]) V {
	return c.GetOrAddAsync(ctx, key, func(ctx context.Context, key string) *Future[V] {
		e, err := loader(ctx, key)

		return Completed(e, err)
	})
}

// GetOrAddAsync returns cached value or value built by asynchronous loader.
//
// Missing value blocks until loader future is resolved.
func (c *Cache[V]) GetOrAddAsync(ctx context.Context, key string, loader AsyncLoader[V]) V {
	if SkipRead(ctx) {
		return c.reload(ctx, key, loader)
	}

	e, found := c.store.Get(key)
	if !found {
		return c.loadMissing(ctx, key, loader)
	}

	switch c.state(e, c.now()) {
	case StateStale:
		c.stat.Add(ctx, MetricExpired, 1, "name", c.config.Name)
		c.log.Debug(ctx, "cache value stale",
			"name", c.config.Name,
			"key", key,
			"expiresAt", e.ExpiresAt)

		c.refreshStale(ctx, key, loader)
	case StateRefreshing:
		c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)
		c.log.Debug(ctx, "cache value is being refreshed", "name", c.config.Name, "key", key)
	default:
		c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)
		c.log.Debug(ctx, "cache hit",
			"name", c.config.Name,
			"key", key,
			"expiresAt", e.ExpiresAt)
	}

	return e.Value
}

// ExpireAll marks all entries as stale, they are still served while being refreshed.
//
// Entries with refresh in progress are not affected. Number of expired entries is returned,
// stores that do not implement Walker are not expired.
func (c *Cache[V]) ExpireAll(ctx context.Context) int {
	w, ok := c.store.(Walker[V])
	if !ok {
		c.log.Warn(ctx, "cache store can not be walked, entries are not expired", "name", c.config.Name)

		return 0
	}

	var keys []string

	if _, err := w.Walk(func(key string, _ Entry[V]) error {
		keys = append(keys, key)

		return nil
	}); err != nil {
		c.log.Error(ctx, "failed to walk cache store", "error", err, "name", c.config.Name)
	}

	n := 0

	for _, k := range keys {
		mu := c.locks.lockFor(k)
		mu.Lock()

		if e, found := c.store.Get(k); found && e.tag == StateFresh {
			c.store.Set(k, e.expired())
			n++
		}

		mu.Unlock()
	}

	c.log.Debug(ctx, "expired cache entries", "name", c.config.Name, "count", n)

	return n
}

// Len returns number of cached entries, or 0 if store does not implement Lener.
func (c *Cache[V]) Len() int {
	if l, ok := c.store.(Lener); ok {
		return l.Len()
	}

	return 0
}

func (c *Cache[V]) state(e Entry[V], now time.Time) State {
	s := e.State(now)

	if s == StateRefreshing && c.config.RefreshTimeout > 0 && now.Sub(e.claimedAt) >= c.config.RefreshTimeout {
		return StateStale
	}

	return s
}

func (c *Cache[V]) loadMissing(ctx context.Context, key string, loader AsyncLoader[V]) V {
	c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)
	c.log.Debug(ctx, "cache miss", "name", c.config.Name, "key", key)

	mu := c.locks.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	if e, found := c.store.Get(key); found {
		c.log.Debug(ctx, "cache value added by concurrent call", "name", c.config.Name, "key", key)

		return e.Value
	}

	v := c.loadLocked(ctx, key, nil, loader)

	if l, ok := c.store.(Lener); ok {
		c.stat.Set(ctx, MetricItems, float64(l.Len()), "name", c.config.Name)
	}

	return v
}

func (c *Cache[V]) reload(ctx context.Context, key string, loader AsyncLoader[V]) V {
	mu := c.locks.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	if e, found := c.store.Get(key); found {
		return c.loadLocked(ctx, key, &e, loader)
	}

	return c.loadLocked(ctx, key, nil, loader)
}

// loadLocked builds and stores entry, key lock must be held.
func (c *Cache[V]) loadLocked(ctx context.Context, key string, prev *Entry[V], loader AsyncLoader[V]) V {
	loaded, err := c.load(ctx, key, loader)
	if err != nil {
		loaded = c.onFailure(ctx, key, prev, LoaderError{Key: key, Err: err})
	}

	var base Entry[V]
	if prev != nil {
		base = *prev
	}

	c.commit(ctx, key, loaded, base)

	return loaded.Value
}

// load invokes loader and waits for its result.
func (c *Cache[V]) load(ctx context.Context, key string, loader AsyncLoader[V]) (e Entry[V], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLoaderPanic, r)
		}

		c.stat.Add(ctx, MetricBuild, 1, "name", c.config.Name)
	}()

	c.log.Debug(ctx, "building cache value", "name", c.config.Name, "key", key)

	f := loader(ctx, key)
	if f == nil {
		return e, ErrNilFuture
	}

	return f.Wait()
}

// commit stores loaded entry, key lock must be held.
func (c *Cache[V]) commit(ctx context.Context, key string, loaded, prev Entry[V]) {
	c.store.Set(key, loaded.committed(prev))

	c.stat.Add(ctx, MetricWrite, 1, "name", c.config.Name)
	c.log.Debug(ctx, "wrote to cache",
		"name", c.config.Name,
		"key", key,
		"expiresAt", loaded.ExpiresAt)
}
