package swrcache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLocks_lockFor(t *testing.T) {
	l := newKeyLocks()

	assert.Same(t, l.lockFor("a"), l.lockFor("a"))
	assert.NotSame(t, l.lockFor("a"), l.lockFor("b"))

	other := newKeyLocks()
	assert.NotSame(t, l.lockFor("a"), other.lockFor("a"))
}

func TestKeyLocks_lockFor_concurrency(t *testing.T) {
	for round := 0; round < 20; round++ {
		l := newKeyLocks()
		n := 64
		locks := make([]*sync.Mutex, n)
		start := make(chan struct{})
		wg := sync.WaitGroup{}
		wg.Add(n)

		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()

				<-start

				locks[i] = l.lockFor("key" + strconv.Itoa(i%2))
			}()
		}

		close(start)
		wg.Wait()

		for i := 2; i < n; i++ {
			assert.Same(t, locks[i%2], locks[i], "round %d, goroutine %d", round, i)
		}

		// Handles returned to racing callers are the ones kept in registry.
		assert.Same(t, locks[0], l.lockFor("key0"))
		assert.Same(t, locks[1], l.lockFor("key1"))
	}
}
