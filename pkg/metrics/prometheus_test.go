package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcweld/cspsolver/pkg/search"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestPrometheusPublisherTracksSolveLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	pub := NewPrometheusPublisher(reg, "cspsolver_test")

	pub.OnSolveStarted(3, 2)
	assert.Equal(t, 1.0, counterValue(t, pub.solvesStarted))

	pub.OnProgress(search.Snapshot{NodesExplored: 10, Backtracks: 2})
	pub.OnSolveCompleted(true, search.Snapshot{NodesExplored: 25, Backtracks: 4, ElapsedMs: 7})

	assert.Equal(t, 25.0, counterValue(t, pub.nodesExplored))
	assert.Equal(t, 4.0, counterValue(t, pub.backtracks))

	completed, err := pub.solvesCompleted.GetMetricWithLabelValues("true")
	require.NoError(t, err)
	assert.Equal(t, 1.0, counterValue(t, completed))
}

func TestPrometheusPublisherAccumulatesAcrossSolves(t *testing.T) {
	reg := prometheus.NewRegistry()
	pub := NewPrometheusPublisher(reg, "cspsolver_test2")

	pub.OnSolveCompleted(true, search.Snapshot{NodesExplored: 5})
	pub.OnSolveCompleted(false, search.Snapshot{NodesExplored: 3})

	assert.Equal(t, 8.0, counterValue(t, pub.nodesExplored))
}
