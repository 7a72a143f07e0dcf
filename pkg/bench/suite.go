// Package bench runs a YAML-described suite of independent CSP solves
// concurrently and collects their outcomes. The suite format and the
// fan-out mechanics are both (NEW): grounded on the broader pack's
// config-by-YAML convention for the former, and on
// internal/parallel/pool.go's bounded-worker-pool shape for the latter —
// reworked here to run whole solves instead of constraint-propagation
// tasks.
package bench

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arcweld/cspsolver/pkg/problems"
	"github.com/arcweld/cspsolver/pkg/search"
)

// Suite is a named collection of independent solve runs plus the solver
// configuration shared by all of them.
type Suite struct {
	Name       string     `yaml:"name"`
	MaxWorkers int        `yaml:"max_workers"`
	Config     ConfigSpec `yaml:"config"`
	Runs       []RunSpec  `yaml:"runs"`
}

// ConfigSpec is the YAML-friendly mirror of search.Config: plain strings
// for the heuristic/propagator enums instead of search.VariableHeuristic
// et al., decoded with ParseX helpers rather than custom yaml.Unmarshaler
// methods, matching the teacher's preference for small explicit parse
// functions over magic unmarshaling.
type ConfigSpec struct {
	VariableHeuristic string `yaml:"variable_heuristic"`
	ValueHeuristic    string `yaml:"value_heuristic"`
	Propagator        string `yaml:"propagator"`
	AC3Preprocessing  *bool  `yaml:"ac3_preprocessing"`
	TimeoutMs         int64  `yaml:"timeout_ms"`
	FindAllSolutions  bool   `yaml:"find_all_solutions"`
	MaxSolutions      int    `yaml:"max_solutions"`
}

// RunSpec is one named solve within a suite. Problem selects which
// problems.* builder to use; only the fields that builder needs should be
// set.
type RunSpec struct {
	Name    string              `yaml:"name"`
	Problem string              `yaml:"problem"`
	N       int                 `yaml:"n,omitempty"`
	Grid    [81]int             `yaml:"grid,omitempty"`
	Graph   map[string][]string `yaml:"graph,omitempty"`
	Colors  []string            `yaml:"colors,omitempty"`
	Addends []string            `yaml:"addends,omitempty"`
	Result  string              `yaml:"result,omitempty"`
}

// ParseSuite decodes a YAML benchmark-suite document.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("bench: parse suite: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("bench: parse suite: name is required")
	}
	if len(s.Runs) == 0 {
		return nil, fmt.Errorf("bench: parse suite: at least one run is required")
	}
	return &s, nil
}

// toConfig resolves the suite's ConfigSpec to a search.Config, falling
// back to search.NewDefaultConfig()'s values for anything left blank.
func (s *Suite) toConfig() (search.Config, error) {
	cfg := search.NewDefaultConfig()

	if s.Config.VariableHeuristic != "" {
		vh, err := ParseVariableHeuristic(s.Config.VariableHeuristic)
		if err != nil {
			return cfg, err
		}
		cfg.VariableHeuristic = vh
	}
	if s.Config.ValueHeuristic != "" {
		vh, err := ParseValueHeuristic(s.Config.ValueHeuristic)
		if err != nil {
			return cfg, err
		}
		cfg.ValueHeuristic = vh
	}
	if s.Config.Propagator != "" {
		p, err := ParsePropagator(s.Config.Propagator)
		if err != nil {
			return cfg, err
		}
		cfg.Propagator = p
	}
	if s.Config.AC3Preprocessing != nil {
		cfg.AC3Preprocessing = *s.Config.AC3Preprocessing
	}
	if s.Config.TimeoutMs != 0 {
		cfg.TimeoutMs = s.Config.TimeoutMs
	}
	if s.Config.FindAllSolutions {
		cfg.FindAllSolutions = true
	}
	if s.Config.MaxSolutions != 0 {
		cfg.MaxSolutions = s.Config.MaxSolutions
	}
	return cfg, nil
}

// ParseVariableHeuristic maps a YAML-friendly name onto search.VariableHeuristic.
func ParseVariableHeuristic(s string) (search.VariableHeuristic, error) {
	switch s {
	case "mrv_degree", "":
		return search.MRVDegree, nil
	case "mrv":
		return search.MRV, nil
	case "degree":
		return search.Degree, nil
	case "dom_wdeg":
		return search.DomWDeg, nil
	default:
		return 0, fmt.Errorf("bench: unknown variable_heuristic %q", s)
	}
}

// ParseValueHeuristic maps a YAML-friendly name onto search.ValueHeuristic.
func ParseValueHeuristic(s string) (search.ValueHeuristic, error) {
	switch s {
	case "default", "":
		return search.DefaultValueOrder, nil
	case "lcv":
		return search.LCV, nil
	default:
		return 0, fmt.Errorf("bench: unknown value_heuristic %q", s)
	}
}

// ParsePropagator maps a YAML-friendly name onto search.Propagator.
func ParsePropagator(s string) (search.Propagator, error) {
	switch s {
	case "forward_checking", "":
		return search.ForwardChecking, nil
	case "ac3":
		return search.AC3Propagation, nil
	default:
		return 0, fmt.Errorf("bench: unknown propagator %q", s)
	}
}

// buildRun turns a RunSpec into a Run ready to be executed, dispatching
// on its Problem field. V-erasure happens here: each problems.* builder
// is generic over its own value type, but bench must fan runs of
// different value types out through the same worker pool, so every
// concrete run is wrapped behind the non-generic Run interface before it
// leaves this function.
func buildRun(spec RunSpec) (Run, error) {
	switch spec.Problem {
	case "n_queens":
		p, err := problems.NQueens(spec.N)
		if err != nil {
			return nil, fmt.Errorf("bench: run %q: %w", spec.Name, err)
		}
		return newIntRun(spec.Name, p), nil
	case "sudoku":
		p, err := problems.Sudoku(spec.Grid)
		if err != nil {
			return nil, fmt.Errorf("bench: run %q: %w", spec.Name, err)
		}
		return newIntRun(spec.Name, p), nil
	case "cryptarithmetic":
		p, err := problems.Cryptarithmetic(spec.Addends, spec.Result)
		if err != nil {
			return nil, fmt.Errorf("bench: run %q: %w", spec.Name, err)
		}
		return newIntRun(spec.Name, p), nil
	case "map_coloring":
		graph := spec.Graph
		if graph == nil {
			graph = problems.AustraliaMap
		}
		p, err := problems.MapColoring(graph, spec.Colors)
		if err != nil {
			return nil, fmt.Errorf("bench: run %q: %w", spec.Name, err)
		}
		return newStringRun(spec.Name, p), nil
	default:
		return nil, fmt.Errorf("bench: run %q: unknown problem %q", spec.Name, spec.Problem)
	}
}
