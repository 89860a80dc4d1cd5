package pathsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/costmodel"
	"github.com/katalvlaran/pathgrid/gridmap"
)

// DefaultChunkSize is the side length of a chunk when WithChunkSize is not given.
const DefaultChunkSize = 3

// Sentinel errors for searcher construction.
var (
	// ErrNilMap indicates New was called without a map.
	ErrNilMap = errors.New("pathsearch: map is nil")
	// ErrUnknownAlgorithm indicates an Algorithm value outside the known variants.
	ErrUnknownAlgorithm = errors.New("pathsearch: unknown algorithm")
	// ErrBadChunkSize indicates a chunk side length below 1.
	ErrBadChunkSize = errors.New("pathsearch: chunk size must be at least 1")
)

// Algorithm selects the search variant bound to a Searcher.
type Algorithm int

const (
	// AlgorithmDirect is 8-directional A* under the geometric cost model.
	AlgorithmDirect Algorithm = iota
	// AlgorithmChunked is the hierarchical, chunk-cached weighted search.
	AlgorithmChunked
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDirect:
		return "direct"
	case AlgorithmChunked:
		return "chunked"
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm maps "direct" / "chunked" (case-insensitive) to an Algorithm.
// An empty string selects AlgorithmDirect.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct", "astar":
		return AlgorithmDirect, nil
	case "chunked", "hierarchical":
		return AlgorithmChunked, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options configures a Searcher.
//
// Algorithm – search variant. Default AlgorithmDirect.
// ChunkSize – chunk side length for AlgorithmChunked. Default DefaultChunkSize.
// Weights   – class costs for AlgorithmChunked. Default costmodel.DefaultWeighted().
type Options struct {
	Algorithm Algorithm
	ChunkSize int
	Weights   costmodel.Weighted
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// DefaultOptions returns the direct variant with chunk size 3 and default weights.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgorithmDirect,
		ChunkSize: DefaultChunkSize,
		Weights:   costmodel.DefaultWeighted(),
	}
}

// WithAlgorithm selects the search variant.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithChunkSize sets the chunk side length used by AlgorithmChunked.
// Values below 1 are rejected by New with ErrBadChunkSize.
func WithChunkSize(n int) Option {
	return func(o *Options) { o.ChunkSize = n }
}

// WithWeights overrides the class costs used by AlgorithmChunked.
func WithWeights(w costmodel.Weighted) Option {
	return func(o *Options) { o.Weights = w }
}

// validate reports the first invalid field.
func (o Options) validate() error {
	switch o.Algorithm {
	case AlgorithmDirect:
		return nil
	case AlgorithmChunked:
		if o.ChunkSize < 1 {
			return fmt.Errorf("%w: got %d", ErrBadChunkSize, o.ChunkSize)
		}

		return o.Weights.Validate()
	}

	return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
}

// Result is the outcome of one query.
//
// Path     – cells from start to goal inclusive; nil when Found is false.
// Cost     – total traversal cost under the variant's cost model.
// Expanded – search effort: grid cells settled by the direct variant, abstract
// nodes reached by the chunked one. Zero when no search was needed.
type Result struct {
	Path     []gridmap.Cell
	Cost     float64
	Expanded int
	Found    bool
}

// Stats describes the precomputed state of a Searcher.
type Stats struct {
	Algorithm Algorithm
	Width     int
	Height    int
	Regions   int

	// Chunked variant only.
	ChunkSize int
	Chunks    int
	Entrances int
	Segments  int // cached intra-chunk routes
}
