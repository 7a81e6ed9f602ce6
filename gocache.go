package swrcache

import (
	gocache "github.com/patrickmn/go-cache"
)

var (
	_ Store[int]  = &GoCacheStore[int]{}
	_ Walker[int] = &GoCacheStore[int]{}
	_ Lener       = &GoCacheStore[int]{}
)

// GoCacheStore keeps entries in a github.com/patrickmn/go-cache instance.
//
// Items are written without go-cache expiration, freshness is controlled by Entry.ExpiresAt.
type GoCacheStore[V any] struct {
	c *gocache.Cache
}

// NewGoCacheStore creates a store on top of go-cache, nil creates a new instance without janitor.
func NewGoCacheStore[V any](c *gocache.Cache) *GoCacheStore[V] {
	if c == nil {
		c = gocache.New(gocache.NoExpiration, 0)
	}

	return &GoCacheStore[V]{c: c}
}

// Get returns stored entry, items of foreign types are treated as missing.
func (s *GoCacheStore[V]) Get(key string) (Entry[V], bool) {
	v, found := s.c.Get(key)
	if !found {
		return Entry[V]{}, false
	}

	e, ok := v.(Entry[V])

	return e, ok
}

// Set stores entry.
func (s *GoCacheStore[V]) Set(key string, entry Entry[V]) {
	s.c.Set(key, entry, gocache.NoExpiration)
}

// Len returns number of items in go-cache.
func (s *GoCacheStore[V]) Len() int {
	return s.c.ItemCount()
}

// Walk walks a snapshot of go-cache items, skipping items of foreign types.
func (s *GoCacheStore[V]) Walk(walkFn func(key string, entry Entry[V]) error) (int, error) {
	n := 0

	for k, item := range s.c.Items() {
		e, ok := item.Object.(Entry[V])
		if !ok {
			continue
		}

		if err := walkFn(k, e); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
