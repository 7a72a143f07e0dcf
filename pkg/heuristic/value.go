package heuristic

import (
	"sort"

	"github.com/arcweld/cspsolver/internal/domain"
	"github.com/arcweld/cspsolver/pkg/csp"
)

// ValueSelector orders the candidate values for a just-chosen variable.
type ValueSelector[V comparable] interface {
	Order(x *csp.Variable[V], dx *domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V], domains []*domain.Domain[V]) []V
	Name() string
	Description() string
}

// DefaultValueSelector yields values in universe order.
type DefaultValueSelector[V comparable] struct{}

func NewDefaultValueSelector[V comparable]() *DefaultValueSelector[V] { return &DefaultValueSelector[V]{} }

func (s *DefaultValueSelector[V]) Order(x *csp.Variable[V], dx *domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V], domains []*domain.Domain[V]) []V {
	return dx.Values()
}

func (s *DefaultValueSelector[V]) Name() string { return "default" }
func (s *DefaultValueSelector[V]) Description() string {
	return "yields candidate values in domain (universe) order"
}

// LCV orders values by least-constraining-value: for each candidate,
// count how many neighbor-domain values (over unassigned neighbors across
// every constraint on x) would be ruled out by assigning it, then sorts
// ascending by that count. It only activates when |D(x)| <= MaxDomainSize;
// above that it degenerates to default (universe) order, to bound the
// cost of the per-candidate neighbor scan.
type LCV[V comparable] struct {
	MaxDomainSize int
}

// NewLCV constructs an LCV selector with the given activation threshold
// (default 20, per spec, if maxDomainSize <= 0).
func NewLCV[V comparable](maxDomainSize int) *LCV[V] {
	if maxDomainSize <= 0 {
		maxDomainSize = 20
	}
	return &LCV[V]{MaxDomainSize: maxDomainSize}
}

func (s *LCV[V]) Name() string { return "lcv" }
func (s *LCV[V]) Description() string {
	return "least constraining value: tries values that rule out the fewest neighbor candidates first"
}

func (s *LCV[V]) Order(x *csp.Variable[V], dx *domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V], domains []*domain.Domain[V]) []V {
	values := dx.Values()
	if dx.Size() > s.MaxDomainSize {
		return values
	}

	constraints := p.Network().ConstraintsOn(x)
	type scored struct {
		v     V
		ruled int
	}
	scoredValues := make([]scored, 0, len(values))
	for _, v := range values {
		tentative := assignmentWith(a, x, v)
		ruled := 0
		for _, c := range constraints {
			for _, y := range c.Scope() {
				if y.Index == x.Index || a.IsAssigned(y.Index) {
					continue
				}
				domains[y.Index].Iterate(func(w V) bool {
					if !c.IsConsistentWith(y, w, tentative) {
						ruled++
					}
					return true
				})
			}
		}
		scoredValues = append(scoredValues, scored{v: v, ruled: ruled})
	}
	sort.SliceStable(scoredValues, func(i, j int) bool { return scoredValues[i].ruled < scoredValues[j].ruled })
	out := make([]V, len(scoredValues))
	for i, sv := range scoredValues {
		out[i] = sv.v
	}
	return out
}

func assignmentWith[V comparable](a *csp.Assignment[V], x *csp.Variable[V], v V) *csp.Assignment[V] {
	tentative := a.Copy()
	tentative.Assign(x.Index, v)
	return tentative
}
