package heuristic

import (
	"testing"

	"github.com/arcweld/cspsolver/pkg/csp"
)

func buildTriangle(t *testing.T) (*csp.CSP[int], *csp.Variable[int], *csp.Variable[int], *csp.Variable[int]) {
	t.Helper()
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1, 2})
	y := b.AddVariable("y", []int{1, 2, 3})
	z := b.AddVariable("z", []int{1, 2, 3, 4})
	b.AddConstraint(csp.NewNotEqual(x, y))
	b.AddConstraint(csp.NewNotEqual(y, z))
	b.AddConstraint(csp.NewNotEqual(x, z))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return p, x, y, z
}

func TestMRVPicksSmallestDomain(t *testing.T) {
	p, x, _, _ := buildTriangle(t)
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewMRV[int]()
	got := sel.Select(p.Variables(), domains, p, a)
	if got != x {
		t.Fatalf("Select() = %v, want x (smallest domain)", got)
	}
}

func TestDegreePicksMostConnected(t *testing.T) {
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1, 2, 3})
	y := b.AddVariable("y", []int{1, 2, 3})
	z := b.AddVariable("z", []int{1, 2, 3})
	b.AddConstraint(csp.NewNotEqual(x, y))
	b.AddConstraint(csp.NewNotEqual(x, z))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewDegree[int]()
	got := sel.Select(p.Variables(), domains, p, a)
	if got != x {
		t.Fatalf("Select() = %v, want x (degree 2)", got)
	}
}

func TestCompositeBreaksTiesByDegree(t *testing.T) {
	b := csp.NewBuilder[int]()
	// x and y both have domain size 2; y has higher degree, so composite
	// should prefer y over x despite x appearing first.
	x := b.AddVariable("x", []int{1, 2})
	y := b.AddVariable("y", []int{1, 2})
	z := b.AddVariable("z", []int{1, 2, 3})
	w := b.AddVariable("w", []int{1, 2, 3})
	b.AddConstraint(csp.NewNotEqual(y, z))
	b.AddConstraint(csp.NewNotEqual(x, z))
	b.AddConstraint(csp.NewNotEqual(y, x))
	b.AddConstraint(csp.NewNotEqual(y, w))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewComposite[int]()
	got := sel.Select(p.Variables(), domains, p, a)
	if got != y {
		t.Fatalf("Select() = %v, want y (tied MRV at size 2, degree 3 vs x's 2)", got)
	}
}

func TestDomWDegRecordFailureBumpsScopeWeights(t *testing.T) {
	p, x, y, _ := buildTriangle(t)
	sel := NewDomWDeg[int]()

	constraints := p.Network().ConstraintsBetween(x, y)
	if len(constraints) == 0 {
		t.Fatal("expected a constraint between x and y")
	}
	sel.RecordFailure(x, constraints[0])
	if x.Weight != 2.0 {
		t.Fatalf("x.Weight = %v after one failure, want 2.0", x.Weight)
	}
	if y.Weight != 2.0 {
		t.Fatalf("y.Weight = %v after one failure on a shared constraint, want 2.0", y.Weight)
	}
	sel.Reset(p)
	if x.Weight != 1.0 || y.Weight != 1.0 {
		t.Fatalf("weights after Reset() = (%v, %v), want (1.0, 1.0)", x.Weight, y.Weight)
	}
}

func TestDomWDegWeightedDegreeSumsQualifyingConstraints(t *testing.T) {
	p, x, y, z := buildTriangle(t)
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewDomWDeg[int]()

	xy := p.Network().ConstraintsBetween(x, y)[0]
	xz := p.Network().ConstraintsBetween(x, z)[0]

	sel.RecordFailure(x, xy)
	sel.RecordFailure(x, xy)
	sel.RecordFailure(x, xz)

	// xy's weight is now 3 (1 + two bumps), xz's is 2 (1 + one bump); both
	// still reach an unassigned neighbor, so both contribute.
	if got, want := sel.weightedDegree(p, x, a), 5.0; got != want {
		t.Fatalf("weightedDegree(x) = %v, want %v", got, want)
	}

	// Assigning z removes xz's contribution: its only other endpoint is
	// now bound, so the constraint no longer represents live search
	// pressure and must drop out of the sum.
	a.Assign(z.Index, 1)
	if got, want := sel.weightedDegree(p, x, a), 3.0; got != want {
		t.Fatalf("weightedDegree(x) with z assigned = %v, want %v (xz should drop out)", got, want)
	}
}

func TestDomWDegPrefersHigherWeightedDegree(t *testing.T) {
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1, 2})
	y := b.AddVariable("y", []int{1, 2})
	z := b.AddVariable("z", []int{1, 2, 3})
	cxz := csp.NewNotEqual(x, z)
	cyz := csp.NewNotEqual(y, z)
	b.AddConstraint(cxz)
	b.AddConstraint(cyz)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewDomWDeg[int]()

	// x and y tie on domain size (2) and, initially, on weighted degree
	// (one qualifying constraint each, at the baseline weight of 1).
	// Bumping cxz's weight twice should lower x's score (|D|/weightedDegree)
	// below y's and make it the preferred pick.
	sel.RecordFailure(x, cxz)
	sel.RecordFailure(x, cxz)
	got := sel.Select([]*csp.Variable[int]{x, y}, domains, p, a)
	if got != x {
		t.Fatalf("Select() = %v, want x (lower score from higher weighted constraint)", got)
	}
}

func TestDefaultValueSelectorOrder(t *testing.T) {
	p, x, _, _ := buildTriangle(t)
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewDefaultValueSelector[int]()
	got := sel.Order(x, domains[x.Index], p, a, domains)
	want := []int{1, 2}
	if len(got) != len(want) {
		t.Fatalf("Order() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Order() = %v, want %v", got, want)
		}
	}
}

func TestLCVDegeneratesAboveThreshold(t *testing.T) {
	universe := make([]int, 25)
	for i := range universe {
		universe[i] = i
	}
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", universe)
	y := b.AddVariable("y", universe)
	b.AddConstraint(csp.NewNotEqual(x, y))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewLCV[int](20)
	got := sel.Order(x, domains[x.Index], p, a, domains)
	if len(got) != 25 || got[0] != 0 {
		t.Fatalf("Order() above threshold did not degenerate to universe order: %v", got[:3])
	}
}

func TestLCVOrdersByLeastConstraining(t *testing.T) {
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1, 2, 3})
	y := b.AddVariable("y", []int{1, 2})
	b.AddConstraint(csp.NewNotEqual(x, y))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	sel := NewLCV[int](20)
	order := sel.Order(x, domains[x.Index], p, a, domains)
	if len(order) != 3 {
		t.Fatalf("Order() len = %d, want 3", len(order))
	}
	// x=1 and x=2 each rule out one value of y; x=3 rules out none, so it
	// must come first.
	if order[0] != 3 {
		t.Fatalf("Order() = %v, want 3 first (rules out no value of y)", order)
	}
	seen := map[int]bool{}
	for _, v := range order {
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("Order() did not return a permutation of {1,2,3}: %v", order)
	}
}
