package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was given.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative arc weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all arcs (including zero-weight ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Arc is a directed, weighted connection to vertex To.
type Arc struct {
	To     int
	Weight int64
}

// Graph is an implicit directed graph over integer vertices.
// Arcs appends the outgoing arcs of u to dst and returns the extended slice.
// The order of the appended arcs is the relaxation order.
type Graph interface {
	Arcs(u int, dst []Arc) []Arc
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (required).
// Target           – optional vertex; the search stops once it is finalized.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – vertices farther than this are not explored. Default math.MaxInt64.
// InfEdgeThreshold – arcs with weight ≥ this threshold are impassable. Default math.MaxInt64.
type Options struct {
	Source           int
	Target           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64

	hasSource bool
	hasTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be given.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// Target sets a vertex at which the search stops early once its distance is final.
func Target(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.hasTarget = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is reported early, from the option constructor.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which arcs are
// considered non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no target, no path,
// and no distance or weight caps.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
