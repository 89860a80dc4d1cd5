package registry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathgrid/gridmap"
)

// Result labels shared by the load and query counters.
const (
	resultOK          = "ok"
	resultNoPath      = "no_path"
	resultInvalid     = "invalid_grid"
	resultOutOfBounds = "out_of_bounds"
	resultNotLoaded   = "not_loaded"
	resultInternal    = "internal"
	resultError       = "error"
)

// Metrics holds the Prometheus collectors of one Registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	loads         *prometheus.CounterVec
	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	buildDuration *prometheus.HistogramVec
	namedMaps     prometheus.Gauge
}

// NewMetrics creates the registry collectors and registers them with reg.
// A nil reg yields working but unregistered collectors.
//
// Exported series:
//
//	pathgrid_loads_total{slot,result}
//	pathgrid_queries_total{slot,result}
//	pathgrid_query_duration_seconds{algorithm}
//	pathgrid_build_duration_seconds{algorithm}
//	pathgrid_named_maps
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathgrid_loads_total",
			Help: "Map loads by slot and outcome.",
		}, []string{"slot", "result"}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathgrid_queries_total",
			Help: "Path queries by slot and outcome.",
		}, []string{"slot", "result"}),
		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathgrid_query_duration_seconds",
			Help:    "Time spent searching, by algorithm.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}, []string{"algorithm"}),
		buildDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathgrid_build_duration_seconds",
			Help:    "Time spent validating and precomputing a loaded map, by algorithm.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3.3s
		}, []string{"algorithm"}),
		namedMaps: f.NewGauge(prometheus.GaugeOpts{
			Name: "pathgrid_named_maps",
			Help: "Number of maps held in the named collection.",
		}),
	}
}

func (m *Metrics) observeLoad(slot, algorithm string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(slot, resultLabel(err, true)).Inc()
	if err == nil {
		m.buildDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	}
}

func (m *Metrics) observeQuery(slot, algorithm string, found bool, err error, d time.Duration) {
	if m == nil {
		return
	}
	result := resultLabel(err, found)
	m.queries.WithLabelValues(slot, result).Inc()
	if algorithm != "" && err == nil {
		m.queryDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	}
}

func (m *Metrics) setNamed(n int) {
	if m == nil {
		return
	}
	m.namedMaps.Set(float64(n))
}

// resultLabel maps an outcome onto a bounded label value.
func resultLabel(err error, found bool) string {
	switch {
	case err == nil && found:
		return resultOK
	case err == nil:
		return resultNoPath
	case errors.Is(err, gridmap.ErrInvalidGrid):
		return resultInvalid
	case errors.Is(err, gridmap.ErrOutOfBounds):
		return resultOutOfBounds
	case errors.Is(err, ErrNotLoaded):
		return resultNotLoaded
	case errors.Is(err, ErrInternal):
		return resultInternal
	}

	return resultError
}
