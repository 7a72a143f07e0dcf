package search

import (
	"sync/atomic"
	"time"
)

// Metrics accumulates per-solve counters using atomic instructions, so a
// concurrent observer (an EventPublisher, or a caller polling between
// onProgress callbacks) always reads a monotonic, if momentarily stale,
// snapshot. Grounded on the teacher's SolverMonitor
// (pkg/minikanren/fd_monitor.go): one Metrics per solve, never shared
// across solves, nil-safe on every Record method so a solver built without
// one can call them unconditionally.
type Metrics struct {
	nodesExplored    atomic.Int64
	backtracks       atomic.Int64
	constraintChecks atomic.Int64
	arcRevisions     atomic.Int64
	domainReductions atomic.Int64
	solutionsFound   atomic.Int64
	startedAt        time.Time
	elapsed          time.Duration
}

// NewMetrics creates a metrics accumulator with its clock started.
func NewMetrics() *Metrics {
	return &Metrics{startedAt: time.Now()}
}

func (m *Metrics) RecordNode() {
	if m == nil {
		return
	}
	m.nodesExplored.Add(1)
}

func (m *Metrics) RecordBacktrack() {
	if m == nil {
		return
	}
	m.backtracks.Add(1)
}

func (m *Metrics) RecordConstraintChecks(n int64) {
	if m == nil || n == 0 {
		return
	}
	m.constraintChecks.Add(n)
}

func (m *Metrics) RecordArcRevisions(n int64) {
	if m == nil || n == 0 {
		return
	}
	m.arcRevisions.Add(n)
}

func (m *Metrics) RecordDomainReductions(n int64) {
	if m == nil || n == 0 {
		return
	}
	m.domainReductions.Add(n)
}

func (m *Metrics) RecordSolution() {
	if m == nil {
		return
	}
	m.solutionsFound.Add(1)
}

// Finish stamps elapsed wall time since the metrics were created. Called
// once, at solve termination.
func (m *Metrics) Finish() {
	if m == nil {
		return
	}
	m.elapsed = time.Since(m.startedAt)
}

// Snapshot is an immutable, point-in-time read of Metrics, as returned in
// Result and passed to event publisher callbacks.
type Snapshot struct {
	NodesExplored    int64
	Backtracks       int64
	ConstraintChecks int64
	ArcRevisions     int64
	DomainReductions int64
	SolutionsFound   int64
	ElapsedMs        int64
}

// Snapshot reads a consistent-enough point-in-time copy of m.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	elapsed := m.elapsed
	if elapsed == 0 {
		elapsed = time.Since(m.startedAt)
	}
	return Snapshot{
		NodesExplored:    m.nodesExplored.Load(),
		Backtracks:       m.backtracks.Load(),
		ConstraintChecks: m.constraintChecks.Load(),
		ArcRevisions:     m.arcRevisions.Load(),
		DomainReductions: m.domainReductions.Load(),
		SolutionsFound:   m.solutionsFound.Load(),
		ElapsedMs:        elapsed.Milliseconds(),
	}
}
