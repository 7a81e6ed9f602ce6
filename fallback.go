package swrcache

import (
	"context"
	"time"

	"github.com/bool64/ctxd"
)

// DefaultFailedUpdateTTL is a cool-down of fallback entry after failed load.
const DefaultFailedUpdateTTL = 10 * time.Second

// onFailure converts loader failure into an entry to serve during cool-down.
//
// Existing value is retained if there is one, otherwise zero value is served.
func (c *Cache[V]) onFailure(ctx context.Context, key string, existing *Entry[V], err error) Entry[V] {
	c.stat.Add(ctx, MetricFailed, 1, "name", c.config.Name)

	fallback := Entry[V]{ExpiresAt: c.now().Add(c.config.FailedUpdateTTL)}
	if existing != nil {
		fallback.Value = existing.Value
	}

	c.log.Warn(ctx, "failed to load cache value, serving fallback",
		"error", ctxd.WrapError(ctx, err, "cache fallback", "retryAt", fallback.ExpiresAt),
		"name", c.config.Name,
		"key", key,
		"stale", existing != nil)

	return fallback
}
