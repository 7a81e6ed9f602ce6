// Package swrcache provides an in-process stale-while-revalidate cache.
// Focused on low read latency and race-free operation on top of slow or unreliable sources.
//
// Features:
//
//   - Fresh values are served without locks.
//   - Expired values are served immediately while a single background refresh updates them.
//   - Missing values are loaded once per key, concurrent callers wait for the same load.
//   - Cache updates are locked per key and per cache instance, different keys never contend.
//   - Loader failures are never returned, previous or zero value is served during a short cool-down.
//   - Synchronous and asynchronous (future based) loaders.
//   - Pluggable entry stores: lock-free map, sharded map, plain map, go-cache.
//   - Allows logging and stats collection.
//
// Entries are never removed, number of distinct keys should be bounded by application.
package swrcache
