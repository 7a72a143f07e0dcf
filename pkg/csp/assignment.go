package csp

// Assignment is a partial mapping from variable index to value, sized to a
// CSP's variable count. The search owns exactly one working Assignment;
// published solutions are independent Copy()s of it.
type Assignment[V comparable] struct {
	assignedMask []uint64
	values       []V
	size         int
}

// NewAssignment builds an empty assignment sized for n variables.
func NewAssignment[V comparable](n int) *Assignment[V] {
	return &Assignment[V]{
		assignedMask: make([]uint64, (n+63)/64),
		values:       make([]V, n),
	}
}

func (a *Assignment[V]) bit(i int) bool {
	return a.assignedMask[i/64]&(1<<uint(i%64)) != 0
}

// Assign binds variable index i to value v.
func (a *Assignment[V]) Assign(i int, v V) {
	if !a.bit(i) {
		a.size++
	}
	a.assignedMask[i/64] |= 1 << uint(i%64)
	a.values[i] = v
}

// Unassign removes any binding for variable index i.
func (a *Assignment[V]) Unassign(i int) {
	if a.bit(i) {
		a.size--
	}
	a.assignedMask[i/64] &^= 1 << uint(i%64)
	var zero V
	a.values[i] = zero
}

// IsAssigned reports whether variable index i currently has a value.
func (a *Assignment[V]) IsAssigned(i int) bool { return a.bit(i) }

// GetValue returns the value bound to variable index i and whether it is
// assigned at all.
func (a *Assignment[V]) GetValue(i int) (V, bool) {
	if !a.bit(i) {
		var zero V
		return zero, false
	}
	return a.values[i], true
}

// Size returns the number of currently assigned variables.
func (a *Assignment[V]) Size() int { return a.size }

// IsComplete reports whether all n variables are assigned.
func (a *Assignment[V]) IsComplete(n int) bool { return a.size == n }

// Copy returns an independent assignment with the same bindings.
func (a *Assignment[V]) Copy() *Assignment[V] {
	mask := make([]uint64, len(a.assignedMask))
	copy(mask, a.assignedMask)
	values := make([]V, len(a.values))
	copy(values, a.values)
	return &Assignment[V]{assignedMask: mask, values: values, size: a.size}
}

// ToMap renders the assignment as variable-name -> value, as returned in
// solver results.
func (a *Assignment[V]) ToMap(vars []*Variable[V]) map[string]V {
	out := make(map[string]V, len(vars))
	for _, v := range vars {
		if val, ok := a.GetValue(v.Index); ok {
			out[v.Name] = val
		}
	}
	return out
}
