// Package search implements the backtracking solver: configuration,
// metrics, the event publisher contract, results, and the iterative
// depth-first search itself. Grounded on the teacher's DFSSearch
// (pkg/minikanren/search.go) — an iterative stack-of-frames backtracker
// over a trail, generalized here to snapshot-and-restore the whole working
// domain set per level: each level frame holds a full Copy() of the
// working domains. Domain's own checkpoint stack is not used by the
// solver or by the propagators.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/arcweld/cspsolver/internal/domain"
	"github.com/arcweld/cspsolver/pkg/csp"
	"github.com/arcweld/cspsolver/pkg/heuristic"
	"github.com/arcweld/cspsolver/pkg/propagate"
)

// solverState is the Idle -> Solving -> {Completed | Cancelled | Error}
// state machine named in spec.md §6.
type solverState int32

const (
	stateIdle solverState = iota
	stateSolving
	stateCompleted
	stateCancelled
	stateErrored
)

// BacktrackingSolver runs the spec's backtrack() procedure over one CSP.
// One solve runs at a time per instance; behavior under concurrent Solve
// calls on the same instance is undefined, per spec.md §5. Cancel is safe
// to call from any goroutine at any time.
type BacktrackingSolver[V comparable] struct {
	csp    *csp.CSP[V]
	config Config

	state     atomic.Int32
	cancelled atomic.Bool
}

// NewBacktrackingSolver constructs a solver bound to p with the given
// configuration, normalizing derived fields (MaxSolutions > 1 implies
// find-all, a nil EventPublisher becomes a no-op).
func NewBacktrackingSolver[V comparable](p *csp.CSP[V], cfg Config) *BacktrackingSolver[V] {
	return &BacktrackingSolver[V]{csp: p, config: cfg.normalized()}
}

// Configuration returns the solver's (normalized) configuration snapshot.
func (s *BacktrackingSolver[V]) Configuration() Config { return s.config }

// IsSolving reports whether a solve is currently in progress.
func (s *BacktrackingSolver[V]) IsSolving() bool {
	return solverState(s.state.Load()) == stateSolving
}

// Cancel requests that any in-progress (or future) solve stop cooperatively
// at its next check point. One-shot: idempotent, thread-safe.
func (s *BacktrackingSolver[V]) Cancel() {
	s.cancelled.Store(true)
}

type searchFrame[V comparable] struct {
	domains  []*domain.Domain[V]
	variable *csp.Variable[V]
	values   []V
	valueIdx int
	depth    int
}

// Solve runs the backtracking search to completion, timeout, cancellation,
// or error, returning a Result carrying every solution found (one solution
// unless FindAllSolutions, and never more than MaxSolutions), a final
// metrics snapshot, and the terminal status.
func (s *BacktrackingSolver[V]) Solve(ctx context.Context) (*Result[V], error) {
	if !s.state.CompareAndSwap(int32(stateIdle), int32(stateSolving)) {
		// Also allow re-solving an instance that previously finished; only
		// a concurrent in-flight solve is disallowed (undefined behavior
		// per spec, so we simply refuse it here rather than racing).
		if solverState(s.state.Load()) == stateSolving {
			return nil, fmt.Errorf("search: solve already in progress on this instance")
		}
		s.state.Store(int32(stateSolving))
	}

	runID := uuid.NewString()
	metrics := NewMetrics()
	pub := s.config.EventPublisher
	deadline := time.Now().Add(time.Duration(s.config.TimeoutMs) * time.Millisecond)

	varSel := s.newVariableSelector()
	valSel := s.newValueSelector()
	varSel.Reset(s.csp)

	pub.OnSolveStarted(len(s.csp.Variables()), len(s.csp.Constraints()))
	slog.Info("search: solve started",
		"run_id", runID,
		"variables", len(s.csp.Variables()),
		"constraints", len(s.csp.Constraints()),
		"variable_heuristic", s.config.VariableHeuristic.String(),
		"propagator", s.config.Propagator.String(),
	)

	domains := s.csp.NewWorkingDomains()

	if s.config.AC3Preprocessing {
		res := propagate.AC3[V](s.csp, domains)
		metrics.RecordArcRevisions(int64(res.ArcRevisions))
		metrics.RecordConstraintChecks(int64(res.ConstraintChecks))
		metrics.RecordDomainReductions(int64(res.DomainReductions))
		slog.Info("search: ac3 preprocessing finished",
			"run_id", runID,
			"contradiction", res.Contradiction,
			"arc_revisions", res.ArcRevisions,
			"domain_reductions", res.DomainReductions,
		)
		if res.Contradiction {
			return s.finish(metrics, Unsatisfiable, nil, "", runID), nil
		}
	}

	a := csp.NewAssignment[V](len(s.csp.Variables()))
	var solutions []map[string]V

	checkTerminated := func() (Status, bool) {
		if s.cancelled.Load() {
			return Cancelled, true
		}
		select {
		case <-ctx.Done():
			return Cancelled, true
		default:
		}
		if time.Now().After(deadline) {
			return Timeout, true
		}
		return 0, false
	}

	unassigned := func() []*csp.Variable[V] {
		out := make([]*csp.Variable[V], 0, len(s.csp.Variables()))
		for _, v := range s.csp.Variables() {
			if !a.IsAssigned(v.Index) {
				out = append(out, v)
			}
		}
		return out
	}

	pushFrame := func(snapshot []*domain.Domain[V], depth int) *searchFrame[V] {
		x := varSel.Select(unassigned(), snapshot, s.csp, a)
		if x == nil || snapshot[x.Index].IsEmpty() {
			return nil
		}
		pub.OnVariableSelected(x.Name, snapshot[x.Index].Size(), depth)
		return &searchFrame[V]{
			domains:  snapshot,
			variable: x,
			values:   valSel.Order(x, snapshot[x.Index], s.csp, a, snapshot),
			depth:    depth,
		}
	}

	recordSolution := func() {
		solutions = append(solutions, a.ToMap(s.csp.Variables()))
		metrics.RecordSolution()
		pub.OnSolutionFound(len(solutions), metrics.Snapshot())
	}

	if a.IsComplete(len(s.csp.Variables())) {
		recordSolution()
		return s.finish(metrics, Satisfiable, solutions, "", runID), nil
	}

	var stack []*searchFrame[V]
	if f := pushFrame(domains, 0); f != nil {
		stack = append(stack, f)
	}

	for len(stack) > 0 {
		if status, done := checkTerminated(); done {
			return s.finish(metrics, status, solutions, "", runID), nil
		}

		if metrics.nodesExplored.Load()%progressEveryNodes == 0 && metrics.nodesExplored.Load() > 0 {
			pub.OnProgress(metrics.Snapshot())
		}

		f := stack[len(stack)-1]
		if f.valueIdx >= len(f.values) {
			// Every value of f is exhausted, so the parent's current value
			// has no surviving extension: abandon it as well.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				metrics.RecordBacktrack()
				pub.OnBacktrack(parent.variable.Name, parent.depth)
				a.Unassign(parent.variable.Index)
			}
			continue
		}

		metrics.RecordNode()
		v := f.values[f.valueIdx]
		f.valueIdx++

		levelDomains := copyDomains(f.domains)
		a.Assign(f.variable.Index, v)
		pub.OnValueAssigned(f.variable.Name, any(v), f.depth)

		var propRes propagate.Result[V]
		switch s.config.Propagator {
		case AC3Propagation:
			// Forward checking reduces D(x) to {v} and prunes through every
			// constraint on x (including those without arcs); AC-3 then
			// runs to a fixed point over the reduced domains.
			propRes = propagate.ForwardCheck[V](s.csp, f.variable, v, levelDomains, a)
			if !propRes.Contradiction {
				propRes.Merge(propagate.AC3[V](s.csp, levelDomains))
			}
		default:
			propRes = propagate.ForwardCheck[V](s.csp, f.variable, v, levelDomains, a)
		}
		metrics.RecordConstraintChecks(int64(propRes.ConstraintChecks))
		metrics.RecordArcRevisions(int64(propRes.ArcRevisions))
		metrics.RecordDomainReductions(int64(propRes.DomainReductions))

		if !propRes.Contradiction {
			if a.IsComplete(len(s.csp.Variables())) {
				recordSolution()
				a.Unassign(f.variable.Index)
				if !s.config.FindAllSolutions || len(solutions) >= s.config.MaxSolutions {
					return s.finish(metrics, Satisfiable, solutions, "", runID), nil
				}
				continue
			}
			if next := pushFrame(levelDomains, f.depth+1); next != nil {
				stack = append(stack, next)
				continue
			}
		}

		// Contradiction, or no further variable could be selected: abandon
		// this candidate value.
		metrics.RecordBacktrack()
		pub.OnBacktrack(f.variable.Name, f.depth)
		a.Unassign(f.variable.Index)
		if propRes.Contradiction && propRes.FailedConstraint != nil {
			varSel.RecordFailure(f.variable, propRes.FailedConstraint)
		}
	}

	if len(solutions) > 0 {
		return s.finish(metrics, Satisfiable, solutions, "", runID), nil
	}
	return s.finish(metrics, Unsatisfiable, solutions, "", runID), nil
}

func (s *BacktrackingSolver[V]) finish(metrics *Metrics, status Status, solutions []map[string]V, errMsg string, runID string) *Result[V] {
	metrics.Finish()
	snap := metrics.Snapshot()
	s.config.EventPublisher.OnSolveCompleted(status == Satisfiable, snap)
	slog.Info("search: solve finished",
		"run_id", runID,
		"status", status.String(),
		"solutions", len(solutions),
		"nodes_explored", snap.NodesExplored,
		"backtracks", snap.Backtracks,
	)
	switch status {
	case Cancelled:
		s.state.Store(int32(stateCancelled))
	case Error:
		s.state.Store(int32(stateErrored))
	default:
		s.state.Store(int32(stateCompleted))
	}
	return &Result[V]{RunID: runID, Status: status, Solutions: solutions, Metrics: snap, Error: errMsg}
}

func copyDomains[V comparable](in []*domain.Domain[V]) []*domain.Domain[V] {
	out := make([]*domain.Domain[V], len(in))
	for i, d := range in {
		out[i] = d.Copy()
	}
	return out
}

func (s *BacktrackingSolver[V]) newVariableSelector() heuristic.VariableSelector[V] {
	switch s.config.VariableHeuristic {
	case MRV:
		return heuristic.NewMRV[V]()
	case Degree:
		return heuristic.NewDegree[V]()
	case DomWDeg:
		return heuristic.NewDomWDeg[V]()
	default:
		return heuristic.NewComposite[V]()
	}
}

func (s *BacktrackingSolver[V]) newValueSelector() heuristic.ValueSelector[V] {
	switch s.config.ValueHeuristic {
	case LCV:
		return heuristic.NewLCV[V](s.config.LCVMaxDomainSize)
	default:
		return heuristic.NewDefaultValueSelector[V]()
	}
}
