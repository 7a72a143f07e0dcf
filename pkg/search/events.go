package search

// EventPublisher is an optional collaborator invoked synchronously on the
// search thread at defined lifecycle points. Implementations must be
// non-blocking on the fast path (onVariableSelected/onValueAssigned fire on
// every search node); any internal fan-out is the publisher's own
// responsibility. Kept non-generic over the value type V (values cross the
// boundary as any) so a single adapter, such as the Prometheus one in
// pkg/metrics, can observe solves over any V without its own type
// parameter.
type EventPublisher interface {
	// OnSolveStarted fires once, before AC-3 preprocessing runs and before
	// the first variable is selected.
	OnSolveStarted(numVars, numConstraints int)

	// OnVariableSelected fires once per search node, after the variable
	// selector has chosen the branching variable.
	OnVariableSelected(variable string, domainSize, depth int)

	// OnValueAssigned fires once per candidate value tried.
	OnValueAssigned(variable string, value any, depth int)

	// OnBacktrack fires whenever a candidate value is abandoned, naming the
	// variable that was unassigned.
	OnBacktrack(variable string, depth int)

	// OnSolutionFound fires each time a complete, consistent assignment is
	// recorded; n is the 1-based count of solutions found so far.
	OnSolutionFound(n int, metrics Snapshot)

	// OnProgress fires every 1000 explored nodes.
	OnProgress(metrics Snapshot)

	// OnSolveCompleted fires exactly once, at the end of a solve.
	OnSolveCompleted(satisfiable bool, metrics Snapshot)
}

// NoopEventPublisher implements EventPublisher with no-ops; it is the
// default when Config.EventPublisher is nil, so the solver's hot path never
// needs a nil check.
type NoopEventPublisher struct{}

func (NoopEventPublisher) OnSolveStarted(int, int)                {}
func (NoopEventPublisher) OnVariableSelected(string, int, int)    {}
func (NoopEventPublisher) OnValueAssigned(string, any, int)       {}
func (NoopEventPublisher) OnBacktrack(string, int)                {}
func (NoopEventPublisher) OnSolutionFound(int, Snapshot)          {}
func (NoopEventPublisher) OnProgress(Snapshot)                    {}
func (NoopEventPublisher) OnSolveCompleted(bool, Snapshot)        {}

const progressEveryNodes = 1000
