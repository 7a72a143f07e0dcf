// Package csp contains the constraint-satisfaction data model: variables,
// the domain store they draw from, the constraint contract binary and
// global constraints implement, the precomputed constraint network, and
// the CSP container that owns all of it. It is generic over the value
// type V, mirroring the reference solver's erased-generic design: any V
// usable as a map key (comparable) can be a domain element, and a handful
// of constraints additionally require V to be ordered.
package csp

import "github.com/arcweld/cspsolver/internal/domain"

// Variable names one CSP unknown. Name, the initial domain, and the dense
// index assigned at CSP-construction time are immutable; Weight is the one
// mutable field, incremented by the Dom/WDeg variable selector on every
// recorded contradiction as a readable running total of a variable's
// combined weighted degree (the selector's own per-constraint weight map
// is what Select actually scores against).
type Variable[V comparable] struct {
	Name          string
	InitialDomain *domain.Domain[V]
	Index         int
	Weight        float64
}

// NewVariable constructs a variable with the given name and candidate
// universe. Weight starts at 1.0, per the Dom/WDeg convention.
func NewVariable[V comparable](name string, universe []V) *Variable[V] {
	return &Variable[V]{
		Name:          name,
		InitialDomain: domain.New(universe),
		Weight:        1.0,
	}
}

// Equal compares variables by (name, index), per spec.
func (v *Variable[V]) Equal(other *Variable[V]) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Name == other.Name && v.Index == other.Index
}

func (v *Variable[V]) String() string { return v.Name }
