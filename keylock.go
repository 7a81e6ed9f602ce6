package swrcache

import (
	"sync"

	"github.com/puzpuzpuz/xsync"
)

// keyLocks hands out a dedicated mutex per key.
//
// Mutexes are created on first use and retained for the lifetime of registry,
// so identical keys always synchronize on the same mutex.
type keyLocks struct {
	m *xsync.MapOf[string, *sync.Mutex]
}

func newKeyLocks() keyLocks {
	return keyLocks{m: xsync.NewMapOf[*sync.Mutex]()}
}

func (l keyLocks) lockFor(key string) *sync.Mutex {
	if mu, ok := l.m.Load(key); ok {
		return mu
	}

	// LoadOrCompute of xsync v1 may return a value other than the stored one, so LoadOrStore is used.
	mu, _ := l.m.LoadOrStore(key, &sync.Mutex{})

	return mu
}
