package pathsearch

import (
	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/gridmap"
)

// engine is one search variant. find is only called with distinct, in-bounds
// start and goal indices whose goal cell is passable.
type engine interface {
	find(start, goal int) (Result, error)
	stats(*Stats)
}

// Searcher answers shortest-path queries on one map with one algorithm.
// It is immutable and safe for concurrent use.
type Searcher struct {
	m        *gridmap.GridMap
	opts     Options
	passable func(code uint8) bool
	regions  *gridmap.Regions
	engine   engine
}

// New binds a search variant to m and runs its precomputation.
// Returns ErrNilMap, ErrUnknownAlgorithm, ErrBadChunkSize or
// costmodel.ErrBadCost for invalid input.
func New(m *gridmap.GridMap, opts ...Option) (*Searcher, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Searcher{m: m, opts: cfg}
	switch cfg.Algorithm {
	case AlgorithmChunked:
		s.passable = cfg.Weights.Passable
		s.regions = m.Regions(s.passable, gridmap.Conn4)
		s.engine = newChunked(m, cfg.Weights, cfg.ChunkSize)
	default:
		var direct costmodel.Direct
		s.passable = direct.Passable
		s.regions = m.Regions(s.passable, gridmap.Conn8)
		s.engine = newAStar(m)
	}

	return s, nil
}

// Find returns the cheapest path from start to goal.
//
// Behavior:
//  1. Either cell outside the map → *gridmap.BoundsError (matches gridmap.ErrOutOfBounds).
//  2. start == goal → a single-cell path, whatever the terrain.
//  3. goal impassable, or start passable and in another region → Found == false.
//  4. Otherwise the bound algorithm runs.
//
// The start cell itself is never checked for passability: a path may leave
// a blocked start cell towards walkable neighbors.
func (s *Searcher) Find(start, goal gridmap.Cell) (Result, error) {
	if err := s.m.CheckBounds(start, goal); err != nil {
		return Result{}, err
	}
	if start == goal {
		return Result{Path: []gridmap.Cell{start}, Found: true}, nil
	}
	si, gi := s.m.IndexOf(start), s.m.IndexOf(goal)
	if !s.passable(s.m.Code(gi)) {
		return Result{}, nil
	}
	if s.passable(s.m.Code(si)) && !s.regions.Same(si, gi) {
		return Result{}, nil
	}

	return s.engine.find(si, gi)
}

// Algorithm reports the variant bound at construction.
func (s *Searcher) Algorithm() Algorithm { return s.opts.Algorithm }

// Options returns the resolved options.
func (s *Searcher) Options() Options { return s.opts }

// Map returns the map the searcher was built from.
func (s *Searcher) Map() *gridmap.GridMap { return s.m }

// Stats reports the size of the precomputed state.
func (s *Searcher) Stats() Stats {
	st := Stats{
		Algorithm: s.opts.Algorithm,
		Width:     s.m.Width(),
		Height:    s.m.Height(),
		Regions:   s.regions.Count(),
	}
	s.engine.stats(&st)

	return st
}

// cellsOf converts row-major indices to cells.
func cellsOf(m *gridmap.GridMap, idx []int) []gridmap.Cell {
	out := make([]gridmap.Cell, len(idx))
	for i, v := range idx {
		out[i] = m.CellOf(v)
	}

	return out
}
