package problems

import (
	"fmt"
	"sort"

	"github.com/arcweld/cspsolver/pkg/csp"
)

// Graph is an undirected adjacency map for a map/graph coloring instance:
// region name -> its neighbor names. Neighbors need not be listed
// symmetrically; MapColoring unions both directions.
type Graph map[string][]string

// AustraliaMap is the classic 6-state map-coloring instance from spec.md
// §8's concrete scenario, grounded on the teacher's examples/graph-coloring
// main (same region names and adjacency list, T omitted there as having
// "no adjacencies"; spec.md's scenario lists only the 6 mainland states).
var AustraliaMap = Graph{
	"WA":  {"NT", "SA"},
	"NT":  {"WA", "SA", "Q"},
	"SA":  {"WA", "NT", "Q", "NSW", "V"},
	"Q":   {"NT", "SA", "NSW"},
	"NSW": {"Q", "SA", "V"},
	"V":   {"SA", "NSW"},
}

// MapColoring builds a graph/map coloring CSP: one variable per region,
// domain = colors, and a NotEqual constraint for every undirected edge.
func MapColoring(graph Graph, colors []string) (*csp.CSP[string], error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("problems: MapColoring: colors cannot be empty")
	}

	names := make([]string, 0, len(graph))
	for region := range graph {
		names = append(names, region)
	}
	sort.Strings(names) // deterministic variable indices across calls

	b := csp.NewBuilder[string]()
	vars := make(map[string]*csp.Variable[string], len(names))
	for _, region := range names {
		vars[region] = b.AddVariable(region, colors)
	}

	seen := make(map[[2]string]bool)
	for _, region := range names {
		for _, neighbor := range graph[region] {
			if _, ok := vars[neighbor]; !ok {
				return nil, fmt.Errorf("problems: MapColoring: %q adjacent to unknown region %q", region, neighbor)
			}
			key := edgeKey(region, neighbor)
			if seen[key] {
				continue
			}
			seen[key] = true
			b.AddConstraint(csp.NewNotEqual(vars[region], vars[neighbor]))
		}
	}

	return b.Build()
}

func edgeKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}
