package swrcache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Expirer can mark all its entries stale.
type Expirer interface {
	ExpireAll(ctx context.Context) int
}

// Invalidator expires a group of caches together with flood protection.
type Invalidator struct {
	mu sync.Mutex

	// SkipInterval defines minimal duration between two invalidations, default 15s.
	SkipInterval time.Duration

	// TimeNow is a clock, default time.Now.
	TimeNow func() time.Time

	expirers []Expirer
	lastRun  time.Time
}

// Add registers caches to invalidate.
func (i *Invalidator) Add(expirers ...Expirer) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.expirers = append(i.expirers, expirers...)
}

// Invalidate expires all registered caches and returns total number of expired entries.
func (i *Invalidator) Invalidate(ctx context.Context) (int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.expirers) == 0 {
		return 0, ErrNothingToInvalidate
	}

	if i.SkipInterval == 0 {
		i.SkipInterval = 15 * time.Second
	}

	now := time.Now
	if i.TimeNow != nil {
		now = i.TimeNow
	}

	if !i.lastRun.IsZero() && now().Sub(i.lastRun) < i.SkipInterval {
		return 0, fmt.Errorf("%w at %s, %s did not pass",
			ErrAlreadyInvalidated, i.lastRun.String(), i.SkipInterval.String())
	}

	i.lastRun = now()
	n := 0

	for _, e := range i.expirers {
		n += e.ExpireAll(ctx)
	}

	return n, nil
}
