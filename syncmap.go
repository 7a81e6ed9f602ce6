package swrcache

import "github.com/puzpuzpuz/xsync"

var (
	_ Store[int]  = &SyncMapStore[int]{}
	_ Walker[int] = &SyncMapStore[int]{}
	_ Lener       = &SyncMapStore[int]{}
)

// SyncMapStore is a lock-free store backed by concurrent hash map.
//
// It is the default store of Cache. Please use NewSyncMapStore to create it.
type SyncMapStore[V any] struct {
	data *xsync.MapOf[string, Entry[V]]
}

// NewSyncMapStore creates an empty store.
func NewSyncMapStore[V any]() *SyncMapStore[V] {
	return &SyncMapStore[V]{data: xsync.NewMapOf[Entry[V]]()}
}

// Get returns stored entry.
func (s *SyncMapStore[V]) Get(key string) (Entry[V], bool) {
	return s.data.Load(key)
}

// Set stores entry.
func (s *SyncMapStore[V]) Set(key string, entry Entry[V]) {
	s.data.Store(key, entry)
}

// Len returns number of entries.
func (s *SyncMapStore[V]) Len() int {
	return s.data.Size()
}

// Walk walks stored entries.
func (s *SyncMapStore[V]) Walk(walkFn func(key string, entry Entry[V]) error) (int, error) {
	var (
		n   int
		err error
	)

	s.data.Range(func(key string, entry Entry[V]) bool {
		if err = walkFn(key, entry); err != nil {
			return false
		}

		n++

		return true
	})

	return n, err
}
