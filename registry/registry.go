package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/pathgrid/gridmap"
	"github.com/katalvlaran/pathgrid/pathsearch"
)

// version is reported by Version.
const version = "1.0.0"

// Slot names used in logs and metric labels.
const (
	slotDefault = "default"
	slotNamed   = "named"
)

// Version returns the library version string.
func Version() string { return version }

// Query is one start/goal pair of a batch.
type Query struct {
	Start gridmap.Cell
	Goal  gridmap.Cell
}

// Registry holds the default map slot and the named map collection.
// The zero value is not usable; create one with New. A Registry is safe for
// concurrent use and is meant to live for the whole process.
type Registry struct {
	log     *slog.Logger
	metrics *Metrics
	search  []pathsearch.Option

	def   defaultSlot
	named namedSlot

	// onPublish runs under a slot's write lock right before the swap.
	onPublish func(slot string)
}

// defaultSlot is the single unnamed map holder.
type defaultSlot struct {
	load     sync.Mutex // serializes loads
	mu       sync.RWMutex
	searcher *pathsearch.Searcher
	poisoned bool
}

// namedSlot is the keyed collection.
type namedSlot struct {
	load     sync.Mutex // serializes loads
	mu       sync.RWMutex
	maps     map[string]*pathsearch.Searcher
	poisoned bool
}

// New returns an empty Registry: no default map and no named maps.
func New(opts ...Option) *Registry {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Registry{
		log:     cfg.Logger,
		metrics: cfg.Metrics,
		search:  cfg.Search,
		named:   namedSlot{maps: make(map[string]*pathsearch.Searcher)},
	}
}

//----------------------------------------------------------------------------//
// Loads
//----------------------------------------------------------------------------//

// LoadDefault validates grid, precomputes a searcher and makes it the
// default map, replacing any previous one.
//
// Errors: ErrInvalidGrid for an empty or ragged grid, pathsearch option
// errors, ErrInternal when the slot is poisoned. On error the previous
// default map stays loaded and unchanged.
func (r *Registry) LoadDefault(grid [][]uint8, opts ...pathsearch.Option) error {
	r.def.load.Lock()
	defer r.def.load.Unlock()

	return r.load(slotDefault, "", grid, opts, func(s *pathsearch.Searcher) error {
		return publish(&r.def.mu, &r.def.poisoned, func() {
			r.hook(slotDefault)
			r.def.searcher = s
		})
	})
}

// LoadNamed is LoadDefault for the named collection: the searcher is stored
// under key, inserting or overwriting. The default slot is never touched.
func (r *Registry) LoadNamed(key string, grid [][]uint8, opts ...pathsearch.Option) error {
	r.named.load.Lock()
	defer r.named.load.Unlock()

	return r.load(slotNamed, key, grid, opts, func(s *pathsearch.Searcher) error {
		var n int
		err := publish(&r.named.mu, &r.named.poisoned, func() {
			r.hook(slotNamed)
			r.named.maps[key] = s
			n = len(r.named.maps)
		})
		if err == nil {
			r.metrics.setNamed(n)
		}

		return err
	})
}

// load builds a searcher with no registry lock held, hands it to store and
// records the outcome.
func (r *Registry) load(slot, key string, grid [][]uint8, opts []pathsearch.Option, store func(*pathsearch.Searcher) error) error {
	start := time.Now()
	s, err := r.build(grid, opts)
	if err == nil {
		err = store(s)
	}
	elapsed := time.Since(start)

	log := r.log.With(slog.String("slot", slot))
	if slot == slotNamed {
		log = log.With(slog.String("key", key))
	}
	if err != nil {
		r.metrics.observeLoad(slot, "", err, elapsed)
		log.Warn("map load rejected", slog.String("error", err.Error()))

		return err
	}

	st := s.Stats()
	r.metrics.observeLoad(slot, st.Algorithm.String(), nil, elapsed)
	log.Info("map loaded",
		slog.Int("width", st.Width),
		slog.Int("height", st.Height),
		slog.String("algorithm", st.Algorithm.String()),
		slog.Int("regions", st.Regions),
		slog.Int("entrances", st.Entrances),
		slog.Duration("build", elapsed),
	)

	return nil
}

// build validates the grid and runs the search precomputation. A panic in
// either is reported as ErrInternal; no shared state exists yet.
func (r *Registry) build(grid [][]uint8, opts []pathsearch.Option) (s *pathsearch.Searcher, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s, err = nil, fmt.Errorf("%w: build panicked: %v", ErrInternal, rec)
		}
	}()

	m, err := gridmap.New(grid)
	if err != nil {
		return nil, err
	}
	all := make([]pathsearch.Option, 0, len(r.search)+len(opts))
	all = append(all, r.search...)
	all = append(all, opts...)

	return pathsearch.New(m, all...)
}

// publish runs fn under mu's write lock. A panic inside fn poisons the slot
// for good; a slot that is already poisoned refuses the write.
func publish(mu *sync.RWMutex, poisoned *bool, fn func()) (err error) {
	mu.Lock()
	defer mu.Unlock()
	if *poisoned {
		return fmt.Errorf("%w: slot poisoned", ErrInternal)
	}
	defer func() {
		if rec := recover(); rec != nil {
			*poisoned = true
			err = fmt.Errorf("%w: slot poisoned: %v", ErrInternal, rec)
		}
	}()
	fn()

	return nil
}

func (r *Registry) hook(slot string) {
	if r.onPublish != nil {
		r.onPublish(slot)
	}
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// QueryDefault returns the cheapest path from start to goal on the default
// map, both endpoints included. A nil path with a nil error means no path
// exists. start == goal yields a one-cell path.
//
// Errors: ErrNotLoaded before the first successful LoadDefault,
// *gridmap.BoundsError (ErrOutOfBounds) for coordinates outside the map,
// ErrInternal for a poisoned slot or a failed search.
func (r *Registry) QueryDefault(start, goal gridmap.Cell) ([]gridmap.Cell, error) {
	s, err := r.def.snapshot()
	if err != nil {
		return nil, r.failLookup(slotDefault, "", err)
	}

	return r.query(slotDefault, "", s, start, goal)
}

// QueryNamed is QueryDefault against the map stored under key. An unknown
// key yields an error wrapping ErrNotLoaded.
func (r *Registry) QueryNamed(key string, start, goal gridmap.Cell) ([]gridmap.Cell, error) {
	s, err := r.named.snapshot(key)
	if err != nil {
		return nil, r.failLookup(slotNamed, key, err)
	}

	return r.query(slotNamed, key, s, start, goal)
}

// FindPaths answers a batch of queries against the default map, in order.
// It stops at the first failing query and returns its error annotated with
// the query index. All queries use the same map snapshot.
func (r *Registry) FindPaths(queries []Query) ([][]gridmap.Cell, error) {
	s, err := r.def.snapshot()
	if err != nil {
		return nil, r.failLookup(slotDefault, "", err)
	}

	return r.batch(slotDefault, "", s, queries)
}

// FindPathsNamed is FindPaths against the map stored under key.
func (r *Registry) FindPathsNamed(key string, queries []Query) ([][]gridmap.Cell, error) {
	s, err := r.named.snapshot(key)
	if err != nil {
		return nil, r.failLookup(slotNamed, key, err)
	}

	return r.batch(slotNamed, key, s, queries)
}

// LineSegment returns the straight cells between a and b on the default map,
// both included. The map only bounds-checks the endpoints.
func (r *Registry) LineSegment(a, b gridmap.Cell) ([]gridmap.Cell, error) {
	s, err := r.def.snapshot()
	if err != nil {
		return nil, r.failLookup(slotDefault, "", err)
	}

	return s.Map().Line(a, b)
}

// Keys returns the named map keys in ascending order.
func (r *Registry) Keys() []string {
	r.named.mu.RLock()
	keys := make([]string, 0, len(r.named.maps))
	for k := range r.named.maps {
		keys = append(keys, k)
	}
	r.named.mu.RUnlock()
	sort.Strings(keys)

	return keys
}

// Searcher returns the default map's searcher, e.g. to read its Stats.
func (r *Registry) Searcher() (*pathsearch.Searcher, error) {
	return r.def.snapshot()
}

// NamedSearcher returns the searcher stored under key.
func (r *Registry) NamedSearcher(key string) (*pathsearch.Searcher, error) {
	return r.named.snapshot(key)
}

func (r *Registry) batch(slot, key string, s *pathsearch.Searcher, queries []Query) ([][]gridmap.Cell, error) {
	out := make([][]gridmap.Cell, len(queries))
	for i, q := range queries {
		path, err := r.query(slot, key, s, q.Start, q.Goal)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		out[i] = path
	}

	return out, nil
}

// query runs one search on an immutable snapshot; no registry lock is held.
func (r *Registry) query(slot, key string, s *pathsearch.Searcher, start, goal gridmap.Cell) (path []gridmap.Cell, err error) {
	began := time.Now()
	var (
		alg   string
		found bool
	)
	defer func() {
		if rec := recover(); rec != nil {
			path, found = nil, false
			err = fmt.Errorf("%w: search %v→%v panicked: %v", ErrInternal, start, goal, rec)
			r.log.Error("search panicked",
				slog.String("slot", slot),
				slog.String("key", key),
				slog.String("start", start.String()),
				slog.String("goal", goal.String()),
				slog.Any("panic", rec),
			)
		}
		r.metrics.observeQuery(slot, alg, found, err, time.Since(began))
	}()

	alg = s.Algorithm().String()
	res, err := s.Find(start, goal)
	if err != nil {
		r.log.Debug("query rejected",
			slog.String("slot", slot),
			slog.String("key", key),
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.String("error", err.Error()),
		)

		return nil, err
	}
	found = res.Found

	return res.Path, nil
}

// failLookup records a query that never reached a searcher.
func (r *Registry) failLookup(slot, key string, err error) error {
	r.metrics.observeQuery(slot, "", false, err, 0)
	r.log.Debug("query without map",
		slog.String("slot", slot),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)

	return err
}

//----------------------------------------------------------------------------//
// Snapshots
//----------------------------------------------------------------------------//

func (d *defaultSlot) snapshot() (*pathsearch.Searcher, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.poisoned {
		return nil, fmt.Errorf("%w: default slot poisoned", ErrInternal)
	}
	if d.searcher == nil {
		return nil, ErrNotLoaded
	}

	return d.searcher, nil
}

func (n *namedSlot) snapshot(key string) (*pathsearch.Searcher, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.poisoned {
		return nil, fmt.Errorf("%w: named maps poisoned", ErrInternal)
	}
	s, ok := n.maps[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrNotLoaded, key)
	}

	return s, nil
}
