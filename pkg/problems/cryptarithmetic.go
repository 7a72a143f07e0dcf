package problems

import (
	"fmt"

	"github.com/arcweld/cspsolver/pkg/csp"
)

// Cryptarithmetic builds a CSP for addends[0] + addends[1] + ... == result
// (e.g. SEND + MORE == MONEY), one variable per distinct letter with domain
// {0..9}, an AllDifferent constraint over every letter, and a single
// LinearConstraint encoding the positional arithmetic (each letter's
// coefficient is the sum of its place values across every word it appears
// in, with the result word's place values negated, so the equation reads
// ∑ coeff_i * letter_i == 0).
//
// (REDESIGN FLAG applied, spec.md §9): leading-letter-nonzero constraints
// are emitted as a unary domain restriction (0 removed from each
// multi-digit word's leading letter), not merely documented — the teacher
// has no cryptarithmetic solver to ground this on; built fresh from
// spec.md's explicit requirement.
func Cryptarithmetic(addends []string, result string) (*csp.CSP[int], error) {
	if len(addends) == 0 {
		return nil, fmt.Errorf("problems: Cryptarithmetic: at least one addend required")
	}
	words := append(append([]string{}, addends...), result)
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("problems: Cryptarithmetic: empty word")
		}
	}

	coeffOf := make(map[rune]int)
	leading := make(map[rune]bool)
	accumulate := func(word string, sign int) {
		place := 1
		for i := len(word) - 1; i >= 0; i-- {
			coeffOf[rune(word[i])] += sign * place
			place *= 10
		}
		if len(word) > 1 {
			leading[rune(word[0])] = true
		}
	}
	for _, w := range addends {
		accumulate(w, 1)
	}
	accumulate(result, -1)

	// Deterministic variable order: first occurrence order across the word
	// list, not map iteration order.
	order := make([]rune, 0, len(coeffOf))
	seen := make(map[rune]bool, len(coeffOf))
	for _, w := range words {
		for _, r := range w {
			if !seen[r] {
				seen[r] = true
				order = append(order, r)
			}
		}
	}
	if len(order) > 10 {
		return nil, fmt.Errorf("problems: Cryptarithmetic: %d distinct letters exceeds 10 available digits", len(order))
	}

	b := csp.NewBuilder[int]()
	vars := make(map[rune]*csp.Variable[int], len(order))
	for _, r := range order {
		universe := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		if leading[r] {
			universe = universe[1:]
		}
		vars[r] = b.AddVariable(string(r), universe)
	}

	allVars := make([]*csp.Variable[int], len(order))
	coeffs := make([]int, len(order))
	for i, r := range order {
		allVars[i] = vars[r]
		coeffs[i] = coeffOf[r]
	}
	b.AddConstraint(csp.NewAllDifferent(allVars...))

	linear, err := csp.NewLinearConstraint(allVars, coeffs, csp.OpEq, 0)
	if err != nil {
		return nil, fmt.Errorf("problems: Cryptarithmetic: %w", err)
	}
	b.AddConstraint(linear)

	return b.Build()
}
