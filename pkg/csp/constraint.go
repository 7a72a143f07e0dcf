package csp

import "github.com/arcweld/cspsolver/internal/domain"

// Constraint is the polymorphic contract every binary or global constraint
// implements. is_consistent may over-approve on partial assignments (it
// must never reject a partial that some completion still satisfies);
// is_satisfied is exact and only meaningful on a complete assignment.
type Constraint[V comparable] interface {
	// Scope returns the ordered list of variables this constraint
	// restricts. Arity is len(Scope()).
	Scope() []*Variable[V]

	// IsSatisfied holds on a complete assignment covering Scope().
	IsSatisfied(a *Assignment[V]) bool

	// IsConsistent holds on any (partial or complete) assignment: an
	// unviolated partial is always consistent.
	IsConsistent(a *Assignment[V]) bool

	// IsConsistentWith reports whether a ∪ {x: v} would be consistent. a
	// must not already assign x.
	IsConsistentWith(x *Variable[V], v V, a *Assignment[V]) bool

	// Arcs returns the directed arcs AC-3 should seed its queue with.
	// Constraints with no binary decomposition (e.g. Linear) return nil.
	Arcs() []Arc[V]

	// Revise removes every value from domains[x.Index] lacking support in
	// domains[y.Index] under this constraint, reporting whether D(x)
	// shrank. Constraints with empty Arcs never have Revise called.
	Revise(x, y *Variable[V], domains []*domain.Domain[V]) (bool, error)
}

// Arc is a directed pair (X, Y, Constraint) meaning "make X consistent
// against Y under Constraint". Equality is by all three fields.
type Arc[V comparable] struct {
	X, Y       *Variable[V]
	Constraint Constraint[V]
}

// Equal compares two arcs by variable index identity and constraint
// pointer identity.
func (a Arc[V]) Equal(other Arc[V]) bool {
	return a.X.Index == other.X.Index &&
		a.Y.Index == other.Y.Index &&
		sameConstraint(a.Constraint, other.Constraint)
}

func sameConstraint[V comparable](a, b Constraint[V]) bool {
	return any(a) == any(b)
}

// PropagateOutcome is returned by a constraint's after-assignment
// propagation step (invoked by the forward checker once per constraint on
// the just-assigned variable).
type PropagateOutcome struct {
	// Shrank reports whether any neighbor domain lost a value.
	Shrank bool
	// Contradiction reports whether some neighbor domain was wiped out.
	Contradiction bool
	// WipedVariableIndex names the variable whose domain emptied, when
	// Contradiction is true.
	WipedVariableIndex int
}

// Propagator is implemented by constraints that can react immediately
// after a variable is assigned, pruning neighbor domains in the scope
// (used by forward checking). Constraints that only participate via
// Revise (pure binary constraints) get a default implementation from
// DefaultPropagate.
type Propagator[V comparable] interface {
	Constraint[V]
	PropagateAfterAssignment(x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error)
}

// DefaultPropagate implements the generic forward-checking rule described
// in spec: for each unassigned variable y in c's scope (other than x),
// remove every value from D(y) inconsistent with x=val under c. Binary
// constraints that don't need a specialized propagate step can embed this
// via PropagateAfterAssignment.
func DefaultPropagate[V comparable](c Constraint[V], x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error) {
	var out PropagateOutcome
	for _, y := range c.Scope() {
		if y.Index == x.Index || a.IsAssigned(y.Index) {
			continue
		}
		dy := domains[y.Index]
		var toRemove []V
		dy.Iterate(func(w V) bool {
			if !c.IsConsistentWith(y, w, a) {
				toRemove = append(toRemove, w)
			}
			return true
		})
		for _, w := range toRemove {
			dy.Remove(w)
			out.Shrank = true
		}
		if dy.IsEmpty() {
			out.Contradiction = true
			out.WipedVariableIndex = y.Index
			return out, nil
		}
	}
	return out, nil
}
