package registry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridmap"
	"github.com/katalvlaran/pathgrid/pathsearch"
)

// TestMetrics_Counters checks load and query outcomes land in the right series.
func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := quietRegistry()
	r.metrics = m

	require.NoError(t, r.LoadDefault(unit))
	require.Error(t, r.LoadDefault([][]uint8{{0}, {}}))
	require.NoError(t, r.LoadNamed("a", unit, pathsearch.WithAlgorithm(pathsearch.AlgorithmChunked)))
	require.NoError(t, r.LoadNamed("b", unit))

	_, _ = r.QueryDefault(gridmap.Cell{}, gridmap.Cell{X: 1, Y: 1})
	_, _ = r.QueryDefault(gridmap.Cell{}, gridmap.Cell{X: 9, Y: 9})
	_, _ = r.QueryNamed("a", gridmap.Cell{}, gridmap.Cell{X: 1, Y: 0})
	_, _ = r.QueryNamed("missing", gridmap.Cell{}, gridmap.Cell{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues(slotDefault, resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues(slotDefault, resultInvalid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues(slotNamed, resultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.namedMaps))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(slotDefault, resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(slotDefault, resultOutOfBounds)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(slotNamed, resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(slotNamed, resultNotLoaded)))

	assert.Equal(t, 2, testutil.CollectAndCount(m.queryDuration), "one series per algorithm")
	n, err := testutil.GatherAndCount(reg, "pathgrid_build_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestMetrics_Nil makes sure a registry without metrics works.
func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	m.observeLoad(slotDefault, "direct", nil, 0)
	m.observeQuery(slotDefault, "direct", true, nil, 0)
	m.setNamed(3)
}

// TestResultLabel maps errors onto bounded labels.
func TestResultLabel(t *testing.T) {
	assert.Equal(t, resultOK, resultLabel(nil, true))
	assert.Equal(t, resultNoPath, resultLabel(nil, false))
	assert.Equal(t, resultInvalid, resultLabel(gridmap.ErrNonRectangular, false))
	assert.Equal(t, resultOutOfBounds, resultLabel(&gridmap.BoundsError{}, false))
	assert.Equal(t, resultNotLoaded, resultLabel(ErrNotLoaded, false))
	assert.Equal(t, resultInternal, resultLabel(ErrInternal, false))
	assert.Equal(t, resultError, resultLabel(pathsearch.ErrBadChunkSize, false))
}
