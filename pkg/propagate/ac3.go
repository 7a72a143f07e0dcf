package propagate

import (
	"github.com/arcweld/cspsolver/internal/domain"
	"github.com/arcweld/cspsolver/pkg/csp"
)

// AC3 runs arc consistency to a fixed point over domains: seed the queue
// with every arc of every constraint (deduped), repeatedly revise the
// head arc, and whenever D(x) shrinks, re-enqueue every arc (k, x, c')
// pointing at x except those from the y that x was just revised against.
// AC3 is the default preprocessing step; it is not run again mid-search
// by default (MAC is available but opt-in).
func AC3[V comparable](p *csp.CSP[V], domains []*domain.Domain[V]) Result[V] {
	var res Result[V]

	type arcKey struct {
		x, y int
		c    csp.Constraint[V]
	}
	seen := make(map[arcKey]bool)
	var queue []csp.Arc[V]

	enqueue := func(arc csp.Arc[V]) {
		k := arcKey{arc.X.Index, arc.Y.Index, arc.Constraint}
		if seen[k] {
			return
		}
		seen[k] = true
		queue = append(queue, arc)
	}

	for _, c := range p.Constraints() {
		for _, arc := range c.Arcs() {
			enqueue(arc)
		}
	}

	// arcsInto[v] lists every arc (k, v, c') with v as the tail, used to
	// re-enqueue neighbors of a variable whose domain just shrank.
	arcsInto := make(map[int][]csp.Arc[V])
	for _, c := range p.Constraints() {
		for _, arc := range c.Arcs() {
			arcsInto[arc.Y.Index] = append(arcsInto[arc.Y.Index], arc)
		}
	}

	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		delete(seen, arcKey{arc.X.Index, arc.Y.Index, arc.Constraint})

		shrank, err := arc.Constraint.Revise(arc.X, arc.Y, domains)
		res.ArcRevisions++
		res.ConstraintChecks++
		if err != nil {
			res.Contradiction = true
			res.FailedConstraint = arc.Constraint
			return res
		}
		if !shrank {
			continue
		}
		res.DomainReductions++
		if domains[arc.X.Index].IsEmpty() {
			res.Contradiction = true
			res.FailedConstraint = arc.Constraint
			return res
		}
		// Re-enqueue every arc (k, x, c') with k in scope(c')\{x,y}.
		for _, in := range arcsInto[arc.X.Index] {
			if in.X.Index == arc.Y.Index {
				continue
			}
			enqueue(in)
		}
	}
	return res
}
