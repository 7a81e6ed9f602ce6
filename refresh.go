package swrcache

import (
	"context"
)

// refreshStale claims a stale entry and starts its refresh in background.
//
// Only the caller that finds the entry still stale under key lock starts the refresh,
// others return without waiting. Key lock is never awaited here: its holder (a forced reload,
// a concurrent claim or a refresh commit) owns the next transition of the entry.
func (c *Cache[V]) refreshStale(ctx context.Context, key string, loader AsyncLoader[V]) {
	mu := c.locks.lockFor(key)
	if !mu.TryLock() {
		c.log.Debug(ctx, "stale cache value is locked, skipping refresh", "name", c.config.Name, "key", key)

		return
	}

	e, found := c.store.Get(key)
	now := c.now()

	if !found || c.state(e, now) != StateStale {
		mu.Unlock()

		c.log.Debug(ctx, "stale cache value already refreshed", "name", c.config.Name, "key", key)

		return
	}

	if e.tag == StateRefreshing {
		c.log.Warn(ctx, "reclaiming unfinished refresh",
			"name", c.config.Name,
			"key", key,
			"claimedAt", e.claimedAt)
	}

	claimed := e.claim(now)
	c.store.Set(key, claimed)
	mu.Unlock()

	c.stat.Add(ctx, MetricRefreshed, 1, "name", c.config.Name)
	c.log.Debug(ctx, "refreshing stale cache value in background", "name", c.config.Name, "key", key)

	// Detaching context, so that refresh survives end of the request that triggered it.
	go c.refresh(context.WithoutCancel(ctx), key, claimed, loader)
}

// refresh builds a new value for claimed entry and commits it if the claim is still valid.
func (c *Cache[V]) refresh(ctx context.Context, key string, claimed Entry[V], loader AsyncLoader[V]) {
	loaded, err := c.load(ctx, key, loader)

	mu := c.locks.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	cur, found := c.store.Get(key)
	if !found || cur.tag != StateRefreshing || cur.gen != claimed.gen {
		c.log.Warn(ctx, "discarding result of overtaken refresh",
			"error", err,
			"name", c.config.Name,
			"key", key)

		return
	}

	if err != nil {
		loaded = c.onFailure(ctx, key, &claimed, LoaderError{Key: key, Background: true, Err: err})
	}

	c.commit(ctx, key, loaded, claimed)
	c.log.Debug(ctx, "background refresh complete", "name", c.config.Name, "key", key)
}
