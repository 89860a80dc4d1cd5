package registry

import (
	"log/slog"

	"github.com/katalvlaran/pathgrid/pathsearch"
)

// Options configures a Registry.
//
// Logger – destination for load and failure logs. Default: slog.Default()
// scoped with component=pathgrid.registry.
// Metrics – Prometheus collectors; nil disables metrics.
// Search – pathsearch options applied to every load before per-call options.
type Options struct {
	Logger  *slog.Logger
	Metrics *Metrics
	Search  []pathsearch.Option
}

// Option represents a functional option for configuring a Registry.
type Option func(*Options)

// DefaultOptions returns a registry configuration with the default logger,
// no metrics and the direct search variant.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default().With(slog.String("component", "pathgrid.registry")),
	}
}

// WithLogger routes registry logs to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records loads and queries in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithSearchOptions sets pathsearch options used by every load, e.g. to make
// AlgorithmChunked the registry-wide default. Options passed to an individual
// LoadDefault or LoadNamed call are applied after these.
func WithSearchOptions(opts ...pathsearch.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}
