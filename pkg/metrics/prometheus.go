// Package metrics adapts a solve's event stream onto Prometheus
// collectors, grounded on AleutianFOSS's service layer use of
// prometheus/client_golang (counters/gauges registered once in a
// constructor, updated from request-lifecycle callbacks).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arcweld/cspsolver/pkg/search"
)

// PrometheusPublisher implements search.EventPublisher, exporting solve
// lifecycle counters and the most recent progress snapshot as gauges.
// Safe for concurrent use: every update goes through a prometheus
// collector, which is itself concurrency-safe.
type PrometheusPublisher struct {
	solvesStarted   prometheus.Counter
	solvesCompleted *prometheus.CounterVec
	nodesExplored   prometheus.Counter
	backtracks      prometheus.Counter
	solutionsFound  prometheus.Counter
	lastElapsedMs   prometheus.Gauge
	liveNodes       prometheus.Gauge
	liveBacktracks  prometheus.Gauge
}

// NewPrometheusPublisher builds a publisher and registers its collectors
// against reg. Pass prometheus.DefaultRegisterer for the global registry.
func NewPrometheusPublisher(reg prometheus.Registerer, namespace string) *PrometheusPublisher {
	p := &PrometheusPublisher{
		solvesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_started_total",
			Help:      "Number of CSP solves started.",
		}),
		solvesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_completed_total",
			Help:      "Number of CSP solves completed, labeled by satisfiability.",
		}, []string{"satisfiable"}),
		nodesExplored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_explored_total",
			Help:      "Cumulative search nodes explored across all solves.",
		}),
		backtracks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backtracks_total",
			Help:      "Cumulative backtracks across all solves.",
		}),
		solutionsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_found_total",
			Help:      "Cumulative solutions found across all solves.",
		}),
		lastElapsedMs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_solve_elapsed_ms",
			Help:      "Wall-clock duration of the most recently completed solve, in milliseconds.",
		}),
		liveNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_progress_nodes_explored",
			Help:      "Nodes explored so far by the solve currently in progress.",
		}),
		liveBacktracks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_progress_backtracks",
			Help:      "Backtracks so far by the solve currently in progress.",
		}),
	}
	reg.MustRegister(p.solvesStarted, p.solvesCompleted, p.nodesExplored, p.backtracks,
		p.solutionsFound, p.lastElapsedMs, p.liveNodes, p.liveBacktracks)
	return p
}

func (p *PrometheusPublisher) OnSolveStarted(numVars, numConstraints int) {
	p.solvesStarted.Inc()
}

func (p *PrometheusPublisher) OnVariableSelected(variable string, domainSize, depth int) {}

func (p *PrometheusPublisher) OnValueAssigned(variable string, value any, depth int) {}

func (p *PrometheusPublisher) OnBacktrack(variable string, depth int) {}

func (p *PrometheusPublisher) OnSolutionFound(n int, m search.Snapshot) {
	p.solutionsFound.Inc()
}

// OnProgress only moves the in-progress gauges: Snapshot is a cumulative
// total for the whole run, not a delta, so folding it into the
// ...Total counters here (which OnSolveCompleted also updates) would
// double-count every node the solve has already reported.
func (p *PrometheusPublisher) OnProgress(m search.Snapshot) {
	p.liveNodes.Set(float64(m.NodesExplored))
	p.liveBacktracks.Set(float64(m.Backtracks))
}

func (p *PrometheusPublisher) OnSolveCompleted(satisfiable bool, m search.Snapshot) {
	label := "false"
	if satisfiable {
		label = "true"
	}
	p.solvesCompleted.WithLabelValues(label).Inc()
	p.nodesExplored.Add(float64(m.NodesExplored))
	p.backtracks.Add(float64(m.Backtracks))
	p.lastElapsedMs.Set(float64(m.ElapsedMs))
	p.liveNodes.Set(0)
	p.liveBacktracks.Set(0)
}
