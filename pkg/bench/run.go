package bench

import (
	"context"

	"github.com/arcweld/cspsolver/pkg/csp"
	"github.com/arcweld/cspsolver/pkg/search"
)

// Outcome is one run's result, independent of the CSP's value type.
type Outcome struct {
	Name    string
	Status  search.Status
	Metrics search.Snapshot
	Err     error
}

// Run executes one solve under a shared configuration. Implementations
// close over a *csp.CSP[V] for whichever V their problem builder used,
// so Outcome is the only type that needs to cross problem-value-type
// boundaries.
type Run interface {
	Execute(ctx context.Context, cfg search.Config) Outcome
}

type genericRun[V comparable] struct {
	name string
	csp  *csp.CSP[V]
}

func newIntRun(name string, p *csp.CSP[int]) Run       { return &genericRun[int]{name: name, csp: p} }
func newStringRun(name string, p *csp.CSP[string]) Run { return &genericRun[string]{name: name, csp: p} }

func (r *genericRun[V]) Execute(ctx context.Context, cfg search.Config) Outcome {
	solver := search.NewBacktrackingSolver(r.csp, cfg)
	res, err := solver.Solve(ctx)
	if err != nil {
		return Outcome{Name: r.name, Status: search.Error, Err: err}
	}
	return Outcome{Name: r.name, Status: res.Status, Metrics: res.Metrics}
}
