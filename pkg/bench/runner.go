package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// defaultMaxWorkers bounds fan-out when a suite doesn't set max_workers,
// mirroring internal/parallel/pool.go's pattern of a sane default cap
// rather than unbounded goroutines per task.
const defaultMaxWorkers = 8

// Report is the outcome of running an entire suite: one Outcome per run,
// in suite-definition order regardless of completion order.
type Report struct {
	SuiteName string
	Outcomes  []Outcome
}

// RunSuite builds every run in the suite and executes them concurrently,
// bounded by s.MaxWorkers (or defaultMaxWorkers). Grounded on
// internal/parallel/pool.go's worker-pool shape — a fixed number of
// slots gates concurrent work — reworked here as an errgroup.Group plus
// a buffered channel acting as the slot semaphore, since each task is a
// single long-lived solve rather than a stream of short goal-evaluation
// tasks the teacher's pool was built for. Every run is built before any
// starts, so a builder failure (e.g. a malformed grid or an unknown
// problem) makes RunSuite return an error and no run executes. A solve
// error is recorded in that run's own Outcome with Status == search.Error;
// it does not cancel sibling runs.
func RunSuite(ctx context.Context, s *Suite) (*Report, error) {
	cfg, err := s.toConfig()
	if err != nil {
		return nil, err
	}

	runs := make([]Run, len(s.Runs))
	for i, spec := range s.Runs {
		r, err := buildRun(spec)
		if err != nil {
			return nil, err
		}
		runs[i] = r
	}

	maxWorkers := s.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}
	slots := make(chan struct{}, maxWorkers)

	outcomes := make([]Outcome, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	for i, run := range runs {
		i, run := i, run
		g.Go(func() error {
			select {
			case slots <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-slots }()

			outcomes[i] = run.Execute(gctx, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bench: suite %q: %w", s.Name, err)
	}

	return &Report{SuiteName: s.Name, Outcomes: outcomes}, nil
}
