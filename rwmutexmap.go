package swrcache

import "sync"

var (
	_ Store[int]  = &MapStore[int]{}
	_ Walker[int] = &MapStore[int]{}
	_ Lener       = &MapStore[int]{}
)

// MapStore is a store on top of a plain map.
//
// Writers are serialized with a store-wide lock that is independent of per-key locks of Cache.
type MapStore[V any] struct {
	mu   sync.RWMutex
	data map[string]Entry[V]
}

// NewMapStore creates a store that takes ownership of an existing map, nil map is replaced with an empty one.
//
// The map must not be accessed directly after this call.
func NewMapStore[V any](data map[string]Entry[V]) *MapStore[V] {
	if data == nil {
		data = make(map[string]Entry[V])
	}

	return &MapStore[V]{data: data}
}

// Get returns stored entry.
func (s *MapStore[V]) Get(key string) (Entry[V], bool) {
	s.mu.RLock()
	e, found := s.data[key]
	s.mu.RUnlock()

	return e, found
}

// Set stores entry.
func (s *MapStore[V]) Set(key string, entry Entry[V]) {
	s.mu.Lock()
	s.data[key] = entry
	s.mu.Unlock()
}

// Len returns number of entries.
func (s *MapStore[V]) Len() int {
	s.mu.RLock()
	cnt := len(s.data)
	s.mu.RUnlock()

	return cnt
}

// Walk walks stored entries.
func (s *MapStore[V]) Walk(walkFn func(key string, entry Entry[V]) error) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for k, v := range s.data {
		s.mu.RUnlock()

		err := walkFn(k, v)

		s.mu.RLock()

		if err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
