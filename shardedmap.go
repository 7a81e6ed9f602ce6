package swrcache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

var (
	_ Store[int]  = &ShardedMapStore[int]{}
	_ Walker[int] = &ShardedMapStore[int]{}
	_ Lener       = &ShardedMapStore[int]{}
)

const shards = 64

type bucket[V any] struct {
	sync.RWMutex
	data map[string]Entry[V]
}

// ShardedMapStore is a store with entries spread over independently locked buckets.
//
// Please use NewShardedMapStore to create it.
type ShardedMapStore[V any] struct {
	buckets [shards]bucket[V]
}

// NewShardedMapStore creates an empty store.
func NewShardedMapStore[V any]() *ShardedMapStore[V] {
	s := &ShardedMapStore[V]{}

	for i := 0; i < shards; i++ {
		s.buckets[i].data = make(map[string]Entry[V])
	}

	return s
}

func (s *ShardedMapStore[V]) bucket(key string) *bucket[V] {
	return &s.buckets[xxhash.Sum64String(key)%shards]
}

// Get returns stored entry.
func (s *ShardedMapStore[V]) Get(key string) (Entry[V], bool) {
	b := s.bucket(key)

	b.RLock()
	e, found := b.data[key]
	b.RUnlock()

	return e, found
}

// Set stores entry.
func (s *ShardedMapStore[V]) Set(key string, entry Entry[V]) {
	b := s.bucket(key)

	b.Lock()
	b.data[key] = entry
	b.Unlock()
}

// Len returns number of entries.
func (s *ShardedMapStore[V]) Len() int {
	cnt := 0

	for i := range s.buckets {
		b := &s.buckets[i]

		b.RLock()
		cnt += len(b.data)
		b.RUnlock()
	}

	return cnt
}

// Walk walks stored entries bucket by bucket.
func (s *ShardedMapStore[V]) Walk(walkFn func(key string, entry Entry[V]) error) (int, error) {
	n := 0

	for i := range s.buckets {
		b := &s.buckets[i]

		b.RLock()
		keys := make([]string, 0, len(b.data))
		entries := make([]Entry[V], 0, len(b.data))

		for k, v := range b.data {
			keys = append(keys, k)
			entries = append(entries, v)
		}
		b.RUnlock()

		for j, k := range keys {
			if err := walkFn(k, entries[j]); err != nil {
				return n, err
			}

			n++
		}
	}

	return n, nil
}
