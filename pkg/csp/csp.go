package csp

import "github.com/arcweld/cspsolver/internal/domain"

// CSP owns the immutable variable list, the immutable constraint list, and
// the network derived from them. The CSP owns variables and constraints;
// the network owns only references into them. Multiple solves may share
// one CSP read-only.
type CSP[V comparable] struct {
	vars        []*Variable[V]
	constraints []Constraint[V]
	network     *Network[V]
	byName      map[string]*Variable[V]
}

// Variables returns the CSP's variables in index order.
func (p *CSP[V]) Variables() []*Variable[V] { return p.vars }

// Constraints returns the CSP's constraints.
func (p *CSP[V]) Constraints() []Constraint[V] { return p.constraints }

// Network returns the precomputed constraint adjacency.
func (p *CSP[V]) Network() *Network[V] { return p.network }

// VariableByName looks up a variable by its name, as set at build time.
func (p *CSP[V]) VariableByName(name string) (*Variable[V], bool) {
	v, ok := p.byName[name]
	return v, ok
}

// NewWorkingDomains builds one fresh copy of each variable's initial
// domain, indexed by variable index, for a solver to mutate during search.
func (p *CSP[V]) NewWorkingDomains() []*domain.Domain[V] {
	out := make([]*domain.Domain[V], len(p.vars))
	for i, v := range p.vars {
		out[i] = v.InitialDomain.Copy()
	}
	return out
}

// Builder assembles a CSP incrementally, validating structure (duplicate
// names, constraints over unknown variables) before producing an immutable
// CSP.
type Builder[V comparable] struct {
	vars        []*Variable[V]
	byName      map[string]*Variable[V]
	constraints []Constraint[V]
	err         error
}

// NewBuilder creates an empty builder.
func NewBuilder[V comparable]() *Builder[V] {
	return &Builder[V]{byName: make(map[string]*Variable[V])}
}

// AddVariable registers a new variable with the given name and candidate
// universe, returning it for use in constraints. Duplicate names are a
// structural error surfaced at Build time.
func (b *Builder[V]) AddVariable(name string, universe []V) *Variable[V] {
	if b.err != nil {
		return nil
	}
	if _, dup := b.byName[name]; dup {
		b.err = buildErrorf("duplicate variable name %q", name)
		return nil
	}
	v := NewVariable(name, universe)
	v.Index = len(b.vars)
	b.vars = append(b.vars, v)
	b.byName[name] = v
	return v
}

// AddConstraint registers a constraint. Every variable in its scope must
// have been returned by this builder's AddVariable; otherwise Build fails.
func (b *Builder[V]) AddConstraint(c Constraint[V]) {
	if b.err != nil {
		return
	}
	for _, v := range c.Scope() {
		if v.Index < 0 || v.Index >= len(b.vars) || b.vars[v.Index] != v {
			b.err = buildErrorf("constraint scoped to unknown variable %q", v.Name)
			return
		}
	}
	b.constraints = append(b.constraints, c)
}

// Build finalizes the CSP, failing if any AddVariable/AddConstraint call
// reported a structural error.
func (b *Builder[V]) Build() (*CSP[V], error) {
	if b.err != nil {
		return nil, b.err
	}
	byName := make(map[string]*Variable[V], len(b.byName))
	for k, v := range b.byName {
		byName[k] = v
	}
	return &CSP[V]{
		vars:        b.vars,
		constraints: b.constraints,
		network:     buildNetwork[V](b.vars, b.constraints),
		byName:      byName,
	}, nil
}
