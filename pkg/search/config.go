package search

import "fmt"

// VariableHeuristic enumerates the variable-ordering strategies a solver
// can be configured with.
type VariableHeuristic int

const (
	MRVDegree VariableHeuristic = iota // default
	MRV
	Degree
	DomWDeg
)

func (h VariableHeuristic) String() string {
	switch h {
	case MRV:
		return "MRV"
	case Degree:
		return "DEGREE"
	case DomWDeg:
		return "DOM_WDEG"
	case MRVDegree:
		return "MRV_DEGREE"
	default:
		return fmt.Sprintf("VariableHeuristic(%d)", int(h))
	}
}

// ValueHeuristic enumerates the value-ordering strategies a solver can be
// configured with.
type ValueHeuristic int

const (
	DefaultValueOrder ValueHeuristic = iota // default
	LCV
)

func (h ValueHeuristic) String() string {
	switch h {
	case DefaultValueOrder:
		return "DEFAULT"
	case LCV:
		return "LCV"
	default:
		return fmt.Sprintf("ValueHeuristic(%d)", int(h))
	}
}

// Propagator enumerates the post-assignment propagation strategies.
type Propagator int

const (
	ForwardChecking Propagator = iota // default
	AC3Propagation
)

func (p Propagator) String() string {
	switch p {
	case ForwardChecking:
		return "FORWARD_CHECKING"
	case AC3Propagation:
		return "AC3"
	default:
		return fmt.Sprintf("Propagator(%d)", int(p))
	}
}

// Config is an immutable snapshot of solver configuration, consulted once
// at the start of a solve. Zero-value-safe: a zero Config is not directly
// useful (TimeoutMs=0 times out immediately), so construct one via
// NewDefaultConfig and override fields.
type Config struct {
	VariableHeuristic VariableHeuristic
	ValueHeuristic    ValueHeuristic
	LCVMaxDomainSize  int // only consulted when ValueHeuristic == LCV; <=0 means the heuristic package's default (20)
	Propagator        Propagator
	AC3Preprocessing  bool
	TimeoutMs         int64
	FindAllSolutions  bool
	MaxSolutions      int
	EventPublisher    EventPublisher
}

// NewDefaultConfig returns the spec-mandated defaults: MRV_DEGREE variable
// ordering, DEFAULT value ordering, FORWARD_CHECKING propagation, AC-3
// preprocessing on, a 60s timeout, and a single solution.
func NewDefaultConfig() Config {
	return Config{
		VariableHeuristic: MRVDegree,
		ValueHeuristic:    DefaultValueOrder,
		Propagator:        ForwardChecking,
		AC3Preprocessing:  true,
		TimeoutMs:         60_000,
		FindAllSolutions:  false,
		MaxSolutions:      1,
		EventPublisher:    NoopEventPublisher{},
	}
}

// normalized returns a copy of c with derived fields reconciled: setting
// MaxSolutions above 1 implies find-all behavior up to that limit, and a
// nil EventPublisher is replaced with a no-op so the solver never checks
// for nil.
func (c Config) normalized() Config {
	if c.MaxSolutions > 1 {
		c.FindAllSolutions = true
	}
	if c.MaxSolutions <= 0 {
		c.MaxSolutions = 1
	}
	if c.EventPublisher == nil {
		c.EventPublisher = NoopEventPublisher{}
	}
	return c
}
