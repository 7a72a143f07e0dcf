package csp

import (
	"fmt"

	"github.com/arcweld/cspsolver/internal/domain"
)

// AllDifferent requires every variable in its scope to take a distinct
// value. It has no binary decomposition for AC-3 purposes (Arcs is empty),
// so AC-3 never calls its Revise; Revise itself does singleton pruning
// only. No stronger matching-based filter (e.g. Régin's) is implemented.
type AllDifferent[V comparable] struct {
	vars []*Variable[V]
}

// NewAllDifferent constructs an AllDifferent constraint over vars.
func NewAllDifferent[V comparable](vars ...*Variable[V]) *AllDifferent[V] {
	return &AllDifferent[V]{vars: vars}
}

func (c *AllDifferent[V]) Scope() []*Variable[V] { return c.vars }

func (c *AllDifferent[V]) IsSatisfied(a *Assignment[V]) bool {
	seen := make(map[V]struct{}, len(c.vars))
	for _, v := range c.vars {
		val, ok := a.GetValue(v.Index)
		if !ok {
			return false
		}
		if _, dup := seen[val]; dup {
			return false
		}
		seen[val] = struct{}{}
	}
	return true
}

// IsConsistent checks duplicate-freedom on the assigned subset of scope by
// linear scan, per spec: a partial with no two assigned members sharing a
// value is consistent.
func (c *AllDifferent[V]) IsConsistent(a *Assignment[V]) bool {
	seen := make(map[V]struct{}, len(c.vars))
	for _, v := range c.vars {
		val, ok := a.GetValue(v.Index)
		if !ok {
			continue
		}
		if _, dup := seen[val]; dup {
			return false
		}
		seen[val] = struct{}{}
	}
	return true
}

func (c *AllDifferent[V]) IsConsistentWith(x *Variable[V], v V, a *Assignment[V]) bool {
	for _, other := range c.vars {
		if other.Index == x.Index {
			continue
		}
		ov, ok := a.GetValue(other.Index)
		if ok && ov == v {
			return false
		}
	}
	return true
}

// Arcs is empty: AllDifferent is not decomposed into binary arcs for AC-3.
func (c *AllDifferent[V]) Arcs() []Arc[V] { return nil }

// Revise performs singleton pruning only: if some other scope member is a
// singleton {v}, v is removed from x's domain.
func (c *AllDifferent[V]) Revise(x, y *Variable[V], domains []*domain.Domain[V]) (bool, error) {
	dy := domains[y.Index]
	if !dy.IsSingleton() {
		return false, nil
	}
	v, err := dy.First()
	if err != nil {
		return false, err
	}
	return domains[x.Index].Remove(v), nil
}

// PropagateAfterAssignment removes the just-assigned value from every
// other still-unassigned variable in scope.
func (c *AllDifferent[V]) PropagateAfterAssignment(x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error) {
	var out PropagateOutcome
	for _, y := range c.vars {
		if y.Index == x.Index || a.IsAssigned(y.Index) {
			continue
		}
		dy := domains[y.Index]
		if dy.Remove(val) {
			out.Shrank = true
			if dy.IsEmpty() {
				out.Contradiction = true
				out.WipedVariableIndex = y.Index
				return out, nil
			}
		}
	}
	return out, nil
}

// LinearOp names the relational operator a LinearConstraint enforces
// between the weighted sum and its right-hand side.
type LinearOp int

const (
	OpEq LinearOp = iota
	OpLE
	OpGE
	OpLT
	OpGT
)

func (op LinearOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpLE:
		return "<="
	case OpGE:
		return ">="
	case OpLT:
		return "<"
	case OpGT:
		return ">"
	default:
		return "?"
	}
}

// LinearConstraint enforces ∑ coeffs[i]*vars[i] op rhs via bounds analysis:
// it computes the feasible interval of the sum given each free variable's
// domain extremes (paired with the coefficient's sign) and checks that
// interval against the half-plane op describes. Grounded on the bounds-
// consistency approach of a weighted-sum constraint: determine
// SumMin/SumMax from per-variable min/max paired with coefficient sign,
// then test the feasible interval against the operator's half-plane.
type LinearConstraint struct {
	vars   []*Variable[int]
	coeffs []int
	op     LinearOp
	rhs    int
}

// NewLinearConstraint constructs ∑ coeffs[i]*vars[i] op rhs.
func NewLinearConstraint(vars []*Variable[int], coeffs []int, op LinearOp, rhs int) (*LinearConstraint, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("csp: LinearConstraint: vars cannot be empty")
	}
	if len(vars) != len(coeffs) {
		return nil, fmt.Errorf("csp: LinearConstraint: len(vars)=%d != len(coeffs)=%d", len(vars), len(coeffs))
	}
	return &LinearConstraint{vars: vars, coeffs: coeffs, op: op, rhs: rhs}, nil
}

func (c *LinearConstraint) Scope() []*Variable[int] { return c.vars }

func (c *LinearConstraint) eval(a *Assignment[int]) (sum int, complete bool) {
	complete = true
	for i, v := range c.vars {
		val, ok := a.GetValue(v.Index)
		if !ok {
			complete = false
			continue
		}
		sum += c.coeffs[i] * val
	}
	return sum, complete
}

func (c *LinearConstraint) IsSatisfied(a *Assignment[int]) bool {
	sum, complete := c.eval(a)
	if !complete {
		return false
	}
	return c.holds(sum, sum)
}

// bounds returns [min,max] of the achievable sum given the current
// domains: for unassigned variables, the extreme that is most favorable to
// each coefficient's sign; for assigned variables, the bound coincides
// with the fixed value. domains is optional; when nil, InitialDomain
// extremes are used (used by IsConsistent, which only has the assignment).
func (c *LinearConstraint) bounds(a *Assignment[int], domains []*domain.Domain[int]) (lo, hi int, err error) {
	for i, v := range c.vars {
		coeff := c.coeffs[i]
		if val, ok := a.GetValue(v.Index); ok {
			lo += coeff * val
			hi += coeff * val
			continue
		}
		var d *domain.Domain[int]
		if domains != nil {
			d = domains[v.Index]
		} else {
			d = v.InitialDomain
		}
		dmin, e := minOf[int](d)
		if e != nil {
			return 0, 0, e
		}
		dmax, e := maxOf[int](d)
		if e != nil {
			return 0, 0, e
		}
		if coeff >= 0 {
			lo += coeff * dmin
			hi += coeff * dmax
		} else {
			lo += coeff * dmax
			hi += coeff * dmin
		}
	}
	return lo, hi, nil
}

func (c *LinearConstraint) holds(lo, hi int) bool {
	switch c.op {
	case OpEq:
		return lo <= c.rhs && c.rhs <= hi
	case OpLE:
		return lo <= c.rhs
	case OpGE:
		return hi >= c.rhs
	case OpLT:
		return lo < c.rhs
	case OpGT:
		return hi > c.rhs
	default:
		return false
	}
}

// IsConsistent holds iff the feasible sum interval (over current variable
// bindings and full initial domains for the rest) intersects op's
// half-plane.
func (c *LinearConstraint) IsConsistent(a *Assignment[int]) bool {
	lo, hi, err := c.bounds(a, nil)
	if err != nil {
		return true // empty domain elsewhere is someone else's contradiction to report
	}
	return c.holds(lo, hi)
}

func (c *LinearConstraint) IsConsistentWith(x *Variable[int], v int, a *Assignment[int]) bool {
	tentative := a.Copy()
	tentative.Assign(x.Index, v)
	lo, hi, err := c.bounds(tentative, nil)
	if err != nil {
		return true
	}
	return c.holds(lo, hi)
}

// Arcs is empty: Linear has no binary decomposition.
func (c *LinearConstraint) Arcs() []Arc[int] { return nil }

// Revise is a no-op: Linear never participates in AC-3 arc revision.
func (c *LinearConstraint) Revise(x, y *Variable[int], domains []*domain.Domain[int]) (bool, error) {
	return false, nil
}

// PropagateAfterAssignment iterates each unassigned scope variable, pruning
// candidates that IsConsistentWith rejects.
func (c *LinearConstraint) PropagateAfterAssignment(x *Variable[int], val int, domains []*domain.Domain[int], a *Assignment[int]) (PropagateOutcome, error) {
	var out PropagateOutcome
	for _, y := range c.vars {
		if y.Index == x.Index || a.IsAssigned(y.Index) {
			continue
		}
		dy := domains[y.Index]
		var toRemove []int
		dy.Iterate(func(w int) bool {
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

// TableConstraint is an extensional constraint over a fixed scope: a set
// of tuples that are either the only admissible combinations (positive) or
// the only forbidden ones (negative). A positive table maintains, per scope
// position, a value -> supporting-tuple-indices index so IsConsistentWith
// can answer in time proportional to the number of tuples actually
// supporting that value rather than rescanning the whole table; a negative
// table has no index and scans all of its tuples.
type TableConstraint[V comparable] struct {
	vars     []*Variable[V]
	tuples   [][]V
	positive bool
	supports []map[V][]int // per scope position
}

// NewTableConstraint builds a table constraint. When positive is true,
// tuples lists the only admissible combinations; when false, tuples lists
// forbidden combinations and every other combination is admissible.
func NewTableConstraint[V comparable](vars []*Variable[V], tuples [][]V, positive bool) (*TableConstraint[V], error) {
	for i, t := range tuples {
		if len(t) != len(vars) {
			return nil, fmt.Errorf("csp: TableConstraint: tuple %d has %d values, want %d", i, len(t), len(vars))
		}
	}
	tc := &TableConstraint[V]{vars: vars, tuples: tuples, positive: positive}
	if positive {
		tc.supports = make([]map[V][]int, len(vars))
		for pos := range vars {
			tc.supports[pos] = make(map[V][]int)
			for ti, t := range tuples {
				tc.supports[pos][t[pos]] = append(tc.supports[pos][t[pos]], ti)
			}
		}
	}
	return tc, nil
}

func (c *TableConstraint[V]) Scope() []*Variable[V] { return c.vars }

func (c *TableConstraint[V]) matches(t []V, a *Assignment[V]) bool {
	for pos, v := range c.vars {
		val, ok := a.GetValue(v.Index)
		if !ok {
			continue
		}
		if val != t[pos] {
			return false
		}
	}
	return true
}

func (c *TableConstraint[V]) IsSatisfied(a *Assignment[V]) bool {
	found := false
	for _, t := range c.tuples {
		if c.exactMatch(t, a) {
			found = true
			break
		}
	}
	if c.positive {
		return found
	}
	return !found
}

func (c *TableConstraint[V]) exactMatch(t []V, a *Assignment[V]) bool {
	for pos, v := range c.vars {
		val, ok := a.GetValue(v.Index)
		if !ok {
			return false
		}
		if val != t[pos] {
			return false
		}
	}
	return true
}

func (c *TableConstraint[V]) IsConsistent(a *Assignment[V]) bool {
	if !c.positive {
		// A forbidden-tuple table is consistent on a partial unless the
		// partial already exactly matches a forbidden tuple.
		for _, t := range c.tuples {
			if c.exactMatch(t, a) {
				return false
			}
		}
		return true
	}
	for _, t := range c.tuples {
		if c.matches(t, a) {
			return true
		}
	}
	return c.noneAssigned(a)
}

func (c *TableConstraint[V]) allAssignedMatch(t []V, a *Assignment[V]) bool {
	for pos, v := range c.vars {
		if val, ok := a.GetValue(v.Index); ok && val != t[pos] {
			return false
		}
	}
	return true
}

func (c *TableConstraint[V]) noneAssigned(a *Assignment[V]) bool {
	for _, v := range c.vars {
		if a.IsAssigned(v.Index) {
			return false
		}
	}
	return true
}

// IsConsistentWith scans supports[index(x)][v] and accepts iff some
// supporting tuple matches every currently assigned scope variable.
func (c *TableConstraint[V]) IsConsistentWith(x *Variable[V], v V, a *Assignment[V]) bool {
	pos := c.positionOf(x)
	if pos < 0 {
		return true
	}
	if !c.positive {
		tentative := a.Copy()
		tentative.Assign(x.Index, v)
		for _, t := range c.tuples {
			if c.allAssignedMatch(t, tentative) && c.fullyAssigned(tentative) && c.exactMatch(t, tentative) {
				return false
			}
		}
		return true
	}
	for _, ti := range c.supports[pos][v] {
		t := c.tuples[ti]
		if c.allAssignedMatch(t, a) {
			return true
		}
	}
	return false
}

func (c *TableConstraint[V]) fullyAssigned(a *Assignment[V]) bool {
	for _, v := range c.vars {
		if !a.IsAssigned(v.Index) {
			return false
		}
	}
	return true
}

func (c *TableConstraint[V]) positionOf(x *Variable[V]) int {
	for i, v := range c.vars {
		if v.Index == x.Index {
			return i
		}
	}
	return -1
}

// Arcs is empty: Table is not decomposed into binary arcs.
func (c *TableConstraint[V]) Arcs() []Arc[V] { return nil }

// Revise is a no-op: Table never participates in AC-3 arc revision.
func (c *TableConstraint[V]) Revise(x, y *Variable[V], domains []*domain.Domain[V]) (bool, error) {
	return false, nil
}

func (c *TableConstraint[V]) PropagateAfterAssignment(x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error) {
	return DefaultPropagate[V](c, x, val, domains, a)
}
