// Package propagate implements the two propagation engines the search uses:
// AC-3 (restricted to preprocessing by default) and forward checking
// (run after every assignment during search). Both report a uniform
// Result carrying a contradiction flag, per-call counters, and, on
// failure, the offending constraint so Dom/WDeg can attribute the
// failure.
package propagate

import (
	"github.com/arcweld/cspsolver/internal/domain"
	"github.com/arcweld/cspsolver/pkg/csp"
)

// Result is returned by a propagation pass. Contradiction reports whether
// some domain was wiped out; when true and the responsible constraint
// could be identified, FailedConstraint names it so the caller can record
// a Dom/WDeg failure against it.
type Result[V comparable] struct {
	Contradiction    bool
	FailedConstraint csp.Constraint[V]

	DomainReductions int
	ConstraintChecks int
	ArcRevisions     int
}

// Merge accumulates another result's counters into r (used when several
// propagation passes run back to back within one search step).
func (r *Result[V]) Merge(other Result[V]) {
	r.DomainReductions += other.DomainReductions
	r.ConstraintChecks += other.ConstraintChecks
	r.ArcRevisions += other.ArcRevisions
	if other.Contradiction && !r.Contradiction {
		r.Contradiction = true
		r.FailedConstraint = other.FailedConstraint
	}
}

// ForwardCheck implements the default after-assignment propagator: reduce
// D(x) to the singleton {val}, then for each constraint on x remove from
// every unassigned neighbor's domain any value the constraint rejects.
func ForwardCheck[V comparable](p *csp.CSP[V], x *csp.Variable[V], val V, domains []*domain.Domain[V], a *csp.Assignment[V]) Result[V] {
	var res Result[V]
	if err := domains[x.Index].ReduceTo(val); err != nil {
		res.Contradiction = true
		return res
	}

	for _, c := range p.Network().ConstraintsOn(x) {
		pc, ok := c.(csp.Propagator[V])
		if !ok {
			continue
		}
		outcome, err := pc.PropagateAfterAssignment(x, val, domains, a)
		res.ConstraintChecks++
		if err != nil {
			res.Contradiction = true
			res.FailedConstraint = c
			return res
		}
		if outcome.Shrank {
			res.DomainReductions++
		}
		if outcome.Contradiction {
			res.Contradiction = true
			res.FailedConstraint = c
			return res
		}
	}
	return res
}
