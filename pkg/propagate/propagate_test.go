package propagate

import (
	"testing"

	"github.com/arcweld/cspsolver/pkg/csp"
)

func buildChain(t *testing.T) (*csp.CSP[int], *csp.Variable[int], *csp.Variable[int], *csp.Variable[int]) {
	t.Helper()
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1, 2, 3})
	y := b.AddVariable("y", []int{1, 2, 3})
	z := b.AddVariable("z", []int{1, 2, 3})
	b.AddConstraint(csp.NewNotEqual(x, y))
	b.AddConstraint(csp.NewNotEqual(y, z))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return p, x, y, z
}

func TestAC3ReducesAfterAssignment(t *testing.T) {
	p, x, y, z := buildChain(t)
	domains := p.NewWorkingDomains()
	if err := domains[x.Index].ReduceTo(1); err != nil {
		t.Fatalf("ReduceTo() error = %v", err)
	}
	res := AC3[int](p, domains)
	if res.Contradiction {
		t.Fatal("AC3() reported contradiction on a satisfiable chain")
	}
	if domains[y.Index].Contains(1) {
		t.Fatal("AC3() left 1 in D(y) despite x=1 and x!=y")
	}
	if !domains[z.Index].IsSingleton() && domains[z.Index].Size() != 3 {
		// z is only linked to y, and y still has >1 candidate, so z should
		// be unaffected.
		t.Fatalf("AC3() unexpectedly pruned D(z) to size %d", domains[z.Index].Size())
	}
}

func TestAC3Idempotent(t *testing.T) {
	p, x, _, _ := buildChain(t)
	domains := p.NewWorkingDomains()
	domains[x.Index].ReduceTo(1)
	AC3[int](p, domains)
	second := AC3[int](p, domains)
	if second.DomainReductions != 0 {
		t.Fatalf("second AC3() pass reported %d reductions, want 0", second.DomainReductions)
	}
}

func TestAC3DetectsContradiction(t *testing.T) {
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1})
	y := b.AddVariable("y", []int{1})
	b.AddConstraint(csp.NewNotEqual(x, y))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	res := AC3[int](p, domains)
	if !res.Contradiction {
		t.Fatal("AC3() did not detect the contradiction from two singleton-equal domains")
	}
}

func TestForwardCheckSingleton(t *testing.T) {
	p, x, y, _ := buildChain(t)
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	a.Assign(x.Index, 2)
	res := ForwardCheck[int](p, x, 2, domains, a)
	if res.Contradiction {
		t.Fatal("ForwardCheck() reported contradiction unexpectedly")
	}
	if !domains[x.Index].IsSingleton() {
		t.Fatal("ForwardCheck() did not reduce D(x) to a singleton")
	}
	if domains[y.Index].Contains(2) {
		t.Fatal("ForwardCheck() left 2 in D(y)")
	}
}

func TestForwardCheckContradiction(t *testing.T) {
	b := csp.NewBuilder[int]()
	x := b.AddVariable("x", []int{1, 2})
	y := b.AddVariable("y", []int{1})
	b.AddConstraint(csp.NewNotEqual(x, y))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	domains := p.NewWorkingDomains()
	a := csp.NewAssignment[int](len(p.Variables()))
	a.Assign(x.Index, 1)
	res := ForwardCheck[int](p, x, 1, domains, a)
	if !res.Contradiction {
		t.Fatal("ForwardCheck() did not detect D(y) wipeout")
	}
	if res.FailedConstraint == nil {
		t.Fatal("ForwardCheck() contradiction did not name the failed constraint")
	}
}
