package swrcache

import "time"

// State is a lifecycle state of a cache entry.
type State uint8

// Entry states.
const (
	// StateFresh means entry can be served as is.
	StateFresh State = iota
	// StateStale means entry is served while a refresh is scheduled.
	StateStale
	// StateRefreshing means a background refresh owns the entry, it is served as is.
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Entry is a cached value with absolute expiration.
//
// Entries are stored by value, state changes are written as new copies under the key lock.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time

	tag       State
	gen       uint64
	claimedAt time.Time
}

// MakeEntry creates a fresh entry for a loader result.
func MakeEntry[V any](value V, expiresAt time.Time) Entry[V] {
	return Entry[V]{Value: value, ExpiresAt: expiresAt}
}

// State returns entry state at a given time.
func (e Entry[V]) State(now time.Time) State {
	switch e.tag {
	case StateRefreshing, StateStale:
		return e.tag
	}

	if !now.Before(e.ExpiresAt) {
		return StateStale
	}

	return StateFresh
}

// expired returns a copy that is stale regardless of expiration time.
func (e Entry[V]) expired() Entry[V] {
	e.tag = StateStale

	return e
}

// claim returns a copy owned by a refresh started at now.
func (e Entry[V]) claim(now time.Time) Entry[V] {
	e.tag = StateRefreshing
	e.gen++
	e.claimedAt = now

	return e
}

// committed returns a fresh copy of loaded entry that continues generation of previous one.
func (e Entry[V]) committed(prev Entry[V]) Entry[V] {
	e.tag = StateFresh
	e.gen = prev.gen
	e.claimedAt = time.Time{}

	return e
}
