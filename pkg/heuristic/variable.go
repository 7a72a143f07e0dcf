// Package heuristic implements the variable- and value-ordering strategies
// the backtracking search consults at every node: MRV, Degree, a
// MRV-then-Degree composite, and Dom/WDeg for variable choice; default
// (domain order) and LCV for value choice.
package heuristic

import (
	"math"

	"github.com/arcweld/cspsolver/internal/domain"
	"github.com/arcweld/cspsolver/pkg/csp"
)

// VariableSelector picks the next unassigned variable to branch on.
// Implementations must not be shared across concurrent solves unless they
// hold no mutable state (Dom/WDeg does, and must be cloned or reset per
// solve).
type VariableSelector[V comparable] interface {
	// Select returns the chosen variable from unassigned, or nil if
	// unassigned is empty.
	Select(unassigned []*csp.Variable[V], domains []*domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V]) *csp.Variable[V]

	// RecordFailure is invoked when propagation attributes a contradiction
	// to a specific constraint involving v, just before the search
	// backtracks. Selectors with no learned state may no-op.
	RecordFailure(v *csp.Variable[V], failed csp.Constraint[V])

	// Reset clears any learned state (e.g. Dom/WDeg weights). Invoked at
	// the start of every solve.
	Reset(p *csp.CSP[V])

	Name() string

	// Description returns a short human-readable summary of the selector's
	// rule.
	Description() string
}

// MRV picks the unassigned variable with the smallest current domain size,
// ties broken by iteration order (first seen wins).
type MRV[V comparable] struct{}

func NewMRV[V comparable]() *MRV[V] { return &MRV[V]{} }

func (s *MRV[V]) Select(unassigned []*csp.Variable[V], domains []*domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V]) *csp.Variable[V] {
	var best *csp.Variable[V]
	bestSize := -1
	for _, v := range unassigned {
		size := domains[v.Index].Size()
		if best == nil || size < bestSize {
			best, bestSize = v, size
		}
	}
	return best
}

func (s *MRV[V]) RecordFailure(*csp.Variable[V], csp.Constraint[V]) {}
func (s *MRV[V]) Reset(*csp.CSP[V])                                {}
func (s *MRV[V]) Name() string                                     { return "mrv" }
func (s *MRV[V]) Description() string {
	return "minimum remaining values: picks the unassigned variable with the smallest domain"
}

// Degree picks the unassigned variable with the most constraints
// connecting it to other unassigned variables.
type Degree[V comparable] struct{}

func NewDegree[V comparable]() *Degree[V] { return &Degree[V]{} }

func (s *Degree[V]) Select(unassigned []*csp.Variable[V], domains []*domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V]) *csp.Variable[V] {
	var best *csp.Variable[V]
	bestDeg := -1
	for _, v := range unassigned {
		deg := degreeToUnassigned(p, v, a)
		if best == nil || deg > bestDeg {
			best, bestDeg = v, deg
		}
	}
	return best
}

func degreeToUnassigned[V comparable](p *csp.CSP[V], v *csp.Variable[V], a *csp.Assignment[V]) int {
	count := 0
	for _, n := range p.Network().Neighbors(v) {
		if !a.IsAssigned(n) {
			count++
		}
	}
	return count
}

func (s *Degree[V]) RecordFailure(*csp.Variable[V], csp.Constraint[V]) {}
func (s *Degree[V]) Reset(*csp.CSP[V])                                {}
func (s *Degree[V]) Name() string                                     { return "degree" }
func (s *Degree[V]) Description() string {
	return "picks the unassigned variable with the most constraints to other unassigned variables"
}

// Composite implements MRV with Degree as a tie-breaker: find the
// MRV-minimal domain size, collect every variable tied on it, then pick
// the one among them with the highest degree to unassigned neighbors.
type Composite[V comparable] struct{}

func NewComposite[V comparable]() *Composite[V] { return &Composite[V]{} }

func (s *Composite[V]) Select(unassigned []*csp.Variable[V], domains []*domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V]) *csp.Variable[V] {
	if len(unassigned) == 0 {
		return nil
	}
	bestSize := domains[unassigned[0].Index].Size()
	for _, v := range unassigned[1:] {
		if size := domains[v.Index].Size(); size < bestSize {
			bestSize = size
		}
	}
	var best *csp.Variable[V]
	bestDeg := -1
	for _, v := range unassigned {
		if domains[v.Index].Size() != bestSize {
			continue
		}
		deg := degreeToUnassigned(p, v, a)
		if best == nil || deg > bestDeg {
			best, bestDeg = v, deg
		}
	}
	return best
}

func (s *Composite[V]) RecordFailure(*csp.Variable[V], csp.Constraint[V]) {}
func (s *Composite[V]) Reset(*csp.CSP[V])                                {}
func (s *Composite[V]) Name() string                                     { return "mrv-degree" }
func (s *Composite[V]) Description() string {
	return "minimum remaining values, ties broken by degree to unassigned neighbors"
}

// DomWDeg implements domain-size-over-weighted-degree: every constraint
// starts at weight 1, and each contradiction attributed to a constraint
// bumps that constraint's own weight by 1.0. At selection time, a
// candidate's score is |D(v)| divided by the sum of the weights of every
// constraint on v that also reaches at least one other still-unassigned
// variable — a constraint whose every other endpoint is already bound
// contributes nothing, since it no longer represents live search
// pressure. Smallest score wins.
//
// DomWDeg keeps its own per-constraint weight map (the classic
// structure) rather than reading it back out of Variable.Weight, since
// recovering a per-constraint quantity from Weight alone is impossible
// once a variable sits in more than one constraint that has failed.
// Variable.Weight is still bumped alongside the map on every recorded
// failure, so it remains a meaningful running total (a variable's
// combined weighted degree across every constraint that has ever failed
// on it) for callers — metrics, the CLI — that want a per-variable
// number without walking the network. Instances must not run two solves
// over the same CSP concurrently, and must call Reset between solves to
// clear both the map and Variable.Weight.
type DomWDeg[V comparable] struct {
	weight map[csp.Constraint[V]]float64
}

func NewDomWDeg[V comparable]() *DomWDeg[V] {
	return &DomWDeg[V]{weight: make(map[csp.Constraint[V]]float64)}
}

const domWDegEpsilon = 1e-6

func (s *DomWDeg[V]) constraintWeight(c csp.Constraint[V]) float64 {
	if w, ok := s.weight[c]; ok {
		return w
	}
	return 1.0
}

// weightedDegree sums the weight of every constraint on v that also
// touches a still-unassigned variable other than v.
func (s *DomWDeg[V]) weightedDegree(p *csp.CSP[V], v *csp.Variable[V], a *csp.Assignment[V]) float64 {
	var sum float64
	for _, c := range p.Network().ConstraintsOn(v) {
		for _, other := range c.Scope() {
			if other.Index != v.Index && !a.IsAssigned(other.Index) {
				sum += s.constraintWeight(c)
				break
			}
		}
	}
	return sum
}

func (s *DomWDeg[V]) Select(unassigned []*csp.Variable[V], domains []*domain.Domain[V], p *csp.CSP[V], a *csp.Assignment[V]) *csp.Variable[V] {
	var best *csp.Variable[V]
	bestScore := math.Inf(1)
	for _, v := range unassigned {
		score := float64(domains[v.Index].Size()) / math.Max(domWDegEpsilon, s.weightedDegree(p, v, a))
		if best == nil || score < bestScore {
			best, bestScore = v, score
		}
	}
	return best
}

// RecordFailure bumps failed's own weight by 1.0, and mirrors that bump
// into Weight on every variable sharing failed's scope, including v
// itself.
func (s *DomWDeg[V]) RecordFailure(v *csp.Variable[V], failed csp.Constraint[V]) {
	if failed == nil {
		return
	}
	s.weight[failed] = s.constraintWeight(failed) + 1.0
	for _, other := range failed.Scope() {
		other.Weight += 1.0
	}
}

// Reset clears the per-constraint weight map and restores every
// variable's Weight to 1.0, as required at the start of every solve.
func (s *DomWDeg[V]) Reset(p *csp.CSP[V]) {
	s.weight = make(map[csp.Constraint[V]]float64)
	for _, v := range p.Variables() {
		v.Weight = 1.0
	}
}

func (s *DomWDeg[V]) Name() string { return "dom-wdeg" }
func (s *DomWDeg[V]) Description() string {
	return "domain size over weighted degree: learns which constraints cause contradictions and favors variables tied to heavier ones"
}
