// Package registry is the process-scoped owner of loaded maps: one default
// slot plus any number of maps stored under string keys.
//
// A Registry is the boundary surface a host binding talks to:
//
//	LoadDefault / LoadNamed   – validate a terrain grid, precompute, publish.
//	QueryDefault / QueryNamed – shortest path between two cells.
//	FindPaths / FindPathsNamed – batches of queries against one map.
//
// Concurrency:
//
// The default slot and the named collection each own a sync.RWMutex. Queries
// take the read lock only long enough to copy the searcher pointer and then
// search the immutable snapshot, so any number of queries proceed in
// parallel. Loads are serialized per slot by a separate mutex; the searcher is
// built with no lock held and published under the write lock, so a reload
// never blocks queries for longer than a pointer swap. A failed load leaves
// the previous occupant in place.
//
// If code panics while a slot's write lock is held the slot is poisoned:
// every later call on that slot returns ErrInternal. A panic during a search
// touches no shared state; it is recovered and returned as ErrInternal.
//
// Observability:
//
// Loads and failures are logged through log/slog (WithLogger). Counters and
// latency histograms are exported through Prometheus when a *Metrics built by
// NewMetrics is supplied (WithMetrics); nothing is registered globally.
package registry
