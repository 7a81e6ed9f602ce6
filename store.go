package swrcache

// Store holds cache entries by key.
//
// Store is not required to provide atomicity across Get and Set,
// Cache performs read-modify-write sequences under a per-key lock.
// Implementations must be safe for concurrent use.
type Store[V any] interface {
	// Get returns entry without blocking on other readers.
	Get(key string) (Entry[V], bool)

	// Set stores entry unconditionally.
	Set(key string, entry Entry[V])
}

// Walker calls function for every entry in store and fails on first error returned by that function.
//
// Count of processed entries is returned.
type Walker[V any] interface {
	Walk(func(key string, entry Entry[V]) error) (int, error)
}

// Lener reports number of entries in store.
type Lener interface {
	Len() int
}
