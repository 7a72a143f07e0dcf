package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcweld/cspsolver/pkg/search"
)

const suiteYAML = `
name: smoke
max_workers: 2
config:
  timeout_ms: 5000
runs:
  - name: queens-4
    problem: n_queens
    n: 4
  - name: queens-2
    problem: n_queens
    n: 2
  - name: australia
    problem: map_coloring
    colors: [red, green, blue]
`

func TestParseSuiteAndRunSuite(t *testing.T) {
	suite, err := ParseSuite([]byte(suiteYAML))
	require.NoError(t, err)
	assert.Equal(t, "smoke", suite.Name)
	require.Len(t, suite.Runs, 3)

	report, err := RunSuite(context.Background(), suite)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 3)

	byName := make(map[string]Outcome, len(report.Outcomes))
	for _, o := range report.Outcomes {
		byName[o.Name] = o
	}
	assert.Equal(t, search.Satisfiable, byName["queens-4"].Status)
	assert.Equal(t, search.Unsatisfiable, byName["queens-2"].Status)
	assert.Equal(t, search.Satisfiable, byName["australia"].Status)
}

func TestParseSuiteRejectsMissingName(t *testing.T) {
	_, err := ParseSuite([]byte("runs:\n  - name: x\n    problem: n_queens\n    n: 4\n"))
	assert.Error(t, err)
}

func TestParseSuiteRejectsEmptyRuns(t *testing.T) {
	_, err := ParseSuite([]byte("name: empty\n"))
	assert.Error(t, err)
}

func TestRunSuiteRejectsUnknownProblem(t *testing.T) {
	suite, err := ParseSuite([]byte("name: bad\nruns:\n  - name: x\n    problem: not_a_problem\n"))
	require.NoError(t, err)
	_, err = RunSuite(context.Background(), suite)
	assert.Error(t, err)
}

func TestParseVariableHeuristicRejectsUnknown(t *testing.T) {
	_, err := ParseVariableHeuristic("bogus")
	assert.Error(t, err)
}
