package csp

// Network is the precomputed constraint adjacency for a CSP: which
// constraints touch each variable, which binary constraints link any given
// pair, each variable's neighbor set, and its degree. It is built once at
// CSP construction and never mutated afterward.
type Network[V comparable] struct {
	onVar      [][]Constraint[V]           // index by variable index
	betweenKey map[[2]int][]Constraint[V]  // unordered pair -> binary constraints
	neighbors  []map[int]struct{}          // index by variable index
}

func buildNetwork[V comparable](vars []*Variable[V], constraints []Constraint[V]) *Network[V] {
	n := &Network[V]{
		onVar:      make([][]Constraint[V], len(vars)),
		betweenKey: make(map[[2]int][]Constraint[V]),
		neighbors:  make([]map[int]struct{}, len(vars)),
	}
	for i := range vars {
		n.neighbors[i] = make(map[int]struct{})
	}
	for _, c := range constraints {
		scope := c.Scope()
		for _, v := range scope {
			n.onVar[v.Index] = append(n.onVar[v.Index], c)
		}
		if len(scope) == 2 {
			a, b := scope[0].Index, scope[1].Index
			key := pairKey(a, b)
			n.betweenKey[key] = append(n.betweenKey[key], c)
			n.neighbors[a][b] = struct{}{}
			n.neighbors[b][a] = struct{}{}
		} else {
			for i := 0; i < len(scope); i++ {
				for j := 0; j < len(scope); j++ {
					if i == j {
						continue
					}
					n.neighbors[scope[i].Index][scope[j].Index] = struct{}{}
				}
			}
		}
	}
	return n
}

func pairKey(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// ConstraintsOn returns every constraint involving v.
func (n *Network[V]) ConstraintsOn(v *Variable[V]) []Constraint[V] {
	return n.onVar[v.Index]
}

// ConstraintsBetween returns the binary constraints linking u and v
// (unordered).
func (n *Network[V]) ConstraintsBetween(u, v *Variable[V]) []Constraint[V] {
	return n.betweenKey[pairKey(u.Index, v.Index)]
}

// Neighbors returns the set of variable indices sharing some constraint
// with v.
func (n *Network[V]) Neighbors(v *Variable[V]) []int {
	out := make([]int, 0, len(n.neighbors[v.Index]))
	for idx := range n.neighbors[v.Index] {
		out = append(out, idx)
	}
	return out
}

// Degree returns |ConstraintsOn(v)|.
func (n *Network[V]) Degree(v *Variable[V]) int {
	return len(n.onVar[v.Index])
}
