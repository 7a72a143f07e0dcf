package csp

import (
	"cmp"

	"github.com/arcweld/cspsolver/internal/domain"
)

// Integer is satisfied by the value types binary arithmetic constraints
// (NQueensDiagonal, LinearConstraint) are instantiated with.
type Integer interface {
	~int
}

// NotEqual enforces x ≠ y.
type NotEqual[V comparable] struct {
	X, Y *Variable[V]
}

// NewNotEqual constructs a NotEqual constraint over x and y.
func NewNotEqual[V comparable](x, y *Variable[V]) *NotEqual[V] {
	return &NotEqual[V]{X: x, Y: y}
}

func (c *NotEqual[V]) Scope() []*Variable[V] { return []*Variable[V]{c.X, c.Y} }

func (c *NotEqual[V]) IsSatisfied(a *Assignment[V]) bool {
	xv, _ := a.GetValue(c.X.Index)
	yv, _ := a.GetValue(c.Y.Index)
	return xv != yv
}

func (c *NotEqual[V]) IsConsistent(a *Assignment[V]) bool {
	xv, xok := a.GetValue(c.X.Index)
	yv, yok := a.GetValue(c.Y.Index)
	if !xok || !yok {
		return true
	}
	return xv != yv
}

func (c *NotEqual[V]) IsConsistentWith(x *Variable[V], v V, a *Assignment[V]) bool {
	other := c.other(x)
	if other == nil {
		return true
	}
	ov, ok := a.GetValue(other.Index)
	if !ok {
		return true
	}
	return v != ov
}

func (c *NotEqual[V]) other(x *Variable[V]) *Variable[V] {
	switch x.Index {
	case c.X.Index:
		return c.Y
	case c.Y.Index:
		return c.X
	default:
		return nil
	}
}

func (c *NotEqual[V]) Arcs() []Arc[V] {
	return []Arc[V]{{X: c.X, Y: c.Y, Constraint: c}, {X: c.Y, Y: c.X, Constraint: c}}
}

// Revise: if D(y) is a singleton {v}, remove v from D(x); otherwise no
// revision occurs.
func (c *NotEqual[V]) Revise(x, y *Variable[V], domains []*domain.Domain[V]) (bool, error) {
	dy := domains[y.Index]
	if !dy.IsSingleton() {
		return false, nil
	}
	v, err := dy.First()
	if err != nil {
		return false, err
	}
	dx := domains[x.Index]
	return dx.Remove(v), nil
}

func (c *NotEqual[V]) PropagateAfterAssignment(x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error) {
	return DefaultPropagate[V](c, x, val, domains, a)
}

// LessThanOrEqual enforces x ≤ y over an ordered value type.
type LessThanOrEqual[V cmp.Ordered] struct {
	X, Y *Variable[V]
}

// NewLessThanOrEqual constructs a LessThanOrEqual constraint over x and y.
func NewLessThanOrEqual[V cmp.Ordered](x, y *Variable[V]) *LessThanOrEqual[V] {
	return &LessThanOrEqual[V]{X: x, Y: y}
}

func (c *LessThanOrEqual[V]) Scope() []*Variable[V] { return []*Variable[V]{c.X, c.Y} }

func (c *LessThanOrEqual[V]) IsSatisfied(a *Assignment[V]) bool {
	xv, _ := a.GetValue(c.X.Index)
	yv, _ := a.GetValue(c.Y.Index)
	return xv <= yv
}

func (c *LessThanOrEqual[V]) IsConsistent(a *Assignment[V]) bool {
	xv, xok := a.GetValue(c.X.Index)
	yv, yok := a.GetValue(c.Y.Index)
	if !xok || !yok {
		return true
	}
	return xv <= yv
}

func (c *LessThanOrEqual[V]) IsConsistentWith(x *Variable[V], v V, a *Assignment[V]) bool {
	switch x.Index {
	case c.X.Index:
		if yv, ok := a.GetValue(c.Y.Index); ok {
			return v <= yv
		}
	case c.Y.Index:
		if xv, ok := a.GetValue(c.X.Index); ok {
			return xv <= v
		}
	}
	return true
}

func (c *LessThanOrEqual[V]) Arcs() []Arc[V] {
	return []Arc[V]{{X: c.X, Y: c.Y, Constraint: c}, {X: c.Y, Y: c.X, Constraint: c}}
}

// Revise prunes by bounds. Revising D(x) against D(y) removes values above
// max(D(y)); revising D(y) against D(x) removes values below min(D(x)).
// (This direction is the fix for the §9 bug in the reference
// implementation, which incorrectly bounded D(y) against min(D(y)).)
func (c *LessThanOrEqual[V]) Revise(x, y *Variable[V], domains []*domain.Domain[V]) (bool, error) {
	dx := domains[x.Index]
	dy := domains[y.Index]
	switch {
	case x.Index == c.X.Index && y.Index == c.Y.Index:
		bound, err := maxOf(dy)
		if err != nil {
			return false, err
		}
		return removeWhere(dx, func(v V) bool { return v > bound }), nil
	case x.Index == c.Y.Index && y.Index == c.X.Index:
		bound, err := minOf(dy)
		if err != nil {
			return false, err
		}
		return removeWhere(dx, func(v V) bool { return v < bound }), nil
	default:
		return false, nil
	}
}

func (c *LessThanOrEqual[V]) PropagateAfterAssignment(x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error) {
	return DefaultPropagate[V](c, x, val, domains, a)
}

func minOf[V cmp.Ordered](d *domain.Domain[V]) (V, error) {
	var best V
	first := true
	var err error
	d.Iterate(func(v V) bool {
		if first || v < best {
			best = v
			first = false
		}
		return true
	})
	if first {
		_, err = d.First() // surfaces ErrEmptyDomain
	}
	return best, err
}

func maxOf[V cmp.Ordered](d *domain.Domain[V]) (V, error) {
	var best V
	first := true
	var err error
	d.Iterate(func(v V) bool {
		if first || v > best {
			best = v
			first = false
		}
		return true
	})
	if first {
		_, err = d.First()
	}
	return best, err
}

func removeWhere[V comparable](d *domain.Domain[V], pred func(V) bool) bool {
	var toRemove []V
	d.Iterate(func(v V) bool {
		if pred(v) {
			toRemove = append(toRemove, v)
		}
		return true
	})
	shrank := false
	for _, v := range toRemove {
		if d.Remove(v) {
			shrank = true
		}
	}
	return shrank
}

// NQueensDiagonalConstraint enforces |col1 - col2| ≠ rowDiff, the diagonal
// non-attack rule for two queens rowDiff rows apart.
type NQueensDiagonalConstraint[V Integer] struct {
	X, Y    *Variable[V]
	RowDiff int
}

// NewNQueensDiagonal constructs the diagonal constraint for two queens
// rowDiff rows apart.
func NewNQueensDiagonal[V Integer](x, y *Variable[V], rowDiff int) *NQueensDiagonalConstraint[V] {
	return &NQueensDiagonalConstraint[V]{X: x, Y: y, RowDiff: rowDiff}
}

func (c *NQueensDiagonalConstraint[V]) Scope() []*Variable[V] { return []*Variable[V]{c.X, c.Y} }

func (c *NQueensDiagonalConstraint[V]) diff(xv, yv V) int {
	d := int(xv) - int(yv)
	if d < 0 {
		d = -d
	}
	return d
}

func (c *NQueensDiagonalConstraint[V]) IsSatisfied(a *Assignment[V]) bool {
	xv, _ := a.GetValue(c.X.Index)
	yv, _ := a.GetValue(c.Y.Index)
	return c.diff(xv, yv) != c.RowDiff
}

func (c *NQueensDiagonalConstraint[V]) IsConsistent(a *Assignment[V]) bool {
	xv, xok := a.GetValue(c.X.Index)
	yv, yok := a.GetValue(c.Y.Index)
	if !xok || !yok {
		return true
	}
	return c.diff(xv, yv) != c.RowDiff
}

func (c *NQueensDiagonalConstraint[V]) IsConsistentWith(x *Variable[V], v V, a *Assignment[V]) bool {
	switch x.Index {
	case c.X.Index:
		if yv, ok := a.GetValue(c.Y.Index); ok {
			return c.diff(v, yv) != c.RowDiff
		}
	case c.Y.Index:
		if xv, ok := a.GetValue(c.X.Index); ok {
			return c.diff(xv, v) != c.RowDiff
		}
	}
	return true
}

func (c *NQueensDiagonalConstraint[V]) Arcs() []Arc[V] {
	return []Arc[V]{{X: c.X, Y: c.Y, Constraint: c}, {X: c.Y, Y: c.X, Constraint: c}}
}

// Revise specializes to the singleton case: if the other variable is fixed
// at c, remove {c-RowDiff, c+RowDiff} from D(x).
func (c *NQueensDiagonalConstraint[V]) Revise(x, y *Variable[V], domains []*domain.Domain[V]) (bool, error) {
	dy := domains[y.Index]
	if !dy.IsSingleton() {
		return false, nil
	}
	cv, err := dy.First()
	if err != nil {
		return false, err
	}
	dx := domains[x.Index]
	a1 := V(int(cv) - c.RowDiff)
	a2 := V(int(cv) + c.RowDiff)
	r1 := dx.Remove(a1)
	r2 := dx.Remove(a2)
	return r1 || r2, nil
}

func (c *NQueensDiagonalConstraint[V]) PropagateAfterAssignment(x *Variable[V], val V, domains []*domain.Domain[V], a *Assignment[V]) (PropagateOutcome, error) {
	return DefaultPropagate[V](c, x, val, domains, a)
}
