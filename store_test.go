package swrcache_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	pca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/swrcache"
)

type testStore interface {
	swrcache.Store[int]
	swrcache.Walker[int]
	swrcache.Lener
}

func testStores() map[string]func() testStore {
	return map[string]func() testStore{
		"syncMap":    func() testStore { return swrcache.NewSyncMapStore[int]() },
		"shardedMap": func() testStore { return swrcache.NewShardedMapStore[int]() },
		"map":        func() testStore { return swrcache.NewMapStore[int](nil) },
		"goCache":    func() testStore { return swrcache.NewGoCacheStore[int](nil) },
	}
}

func TestStore(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	for name, newStore := range testStores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, found := s.Get("key")
			assert.False(t, found)
			assert.Equal(t, 0, s.Len())

			s.Set("key", swrcache.MakeEntry(123, exp))

			e, found := s.Get("key")
			require.True(t, found)
			assert.Equal(t, 123, e.Value)
			assert.Equal(t, exp, e.ExpiresAt)

			s.Set("key", swrcache.MakeEntry(456, exp))
			s.Set("other", swrcache.MakeEntry(789, exp))

			e, _ = s.Get("key")
			assert.Equal(t, 456, e.Value)
			assert.Equal(t, 2, s.Len())

			seen := map[string]int{}
			n, err := s.Walk(func(key string, entry swrcache.Entry[int]) error {
				seen[key] = entry.Value

				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, 2, n)
			assert.Equal(t, map[string]int{"key": 456, "other": 789}, seen)

			n, err = s.Walk(func(_ string, _ swrcache.Entry[int]) error {
				return errors.New("stop")
			})
			assert.EqualError(t, err, "stop")
			assert.Equal(t, 0, n)
		})
	}
}

func TestStore_concurrency(t *testing.T) {
	for name, newStore := range testStores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			exp := time.Now().Add(time.Hour)
			n := 1000
			wg := sync.WaitGroup{}
			wg.Add(n)

			for i := 0; i < n; i++ {
				k := "oneone" + strconv.Itoa(i)

				go func() {
					defer wg.Done()

					s.Set(k, swrcache.MakeEntry(123, exp))

					e, found := s.Get(k)
					assert.True(t, found)
					assert.Equal(t, 123, e.Value)
				}()
			}

			wg.Wait()
			assert.Equal(t, n, s.Len())
		})
	}
}

func TestMapStore_existing(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	s := swrcache.NewMapStore(map[string]swrcache.Entry[int]{
		"a": swrcache.MakeEntry(1, exp),
	})

	e, found := s.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, e.Value)
	assert.Equal(t, 1, s.Len())
}

func TestGoCacheStore_foreignItems(t *testing.T) {
	c := pca.New(pca.NoExpiration, 0)
	c.Set("foreign", "not an entry", pca.NoExpiration)

	s := swrcache.NewGoCacheStore[int](c)
	s.Set("key", swrcache.MakeEntry(1, time.Now().Add(time.Hour)))

	_, found := s.Get("foreign")
	assert.False(t, found)

	n, err := s.Walk(func(key string, _ swrcache.Entry[int]) error {
		assert.Equal(t, "key", key)

		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	_, found = c.Get("key")
	assert.True(t, found)
}
