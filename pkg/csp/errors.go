package csp

import "fmt"

// BuildError reports a structural, builder-time problem found by Builder: a
// duplicate variable name or a constraint scoped to an unknown variable.
// Malformed problem input (an out-of-range grid cell, a mismatched
// coefficient count) is rejected by the problem builders and constructors
// with plain errors, not a BuildError. These are fatal and surfaced to the
// caller as invalid input; they are distinct from
// the contradictions a solve-time propagator reports, which are recoverable
// by backtracking.
type BuildError struct {
	Detail string
}

func (e *BuildError) Error() string { return "csp: invalid problem: " + e.Detail }

func buildErrorf(format string, args ...any) *BuildError {
	return &BuildError{Detail: fmt.Sprintf(format, args...)}
}
