package ir

import "sync"

// Group is a named bundle of guarded assignments that performs one logical
// action. Once enabled it asserts its done hole when its effect has
// completed. A group exclusively owns its holes.
type Group struct {
	mu          sync.RWMutex
	name        Id
	assignments []Assignment[Nothing]
	holes       []*Port
	attributes  Attributes
}

// NewGroup creates a group with no holes or assignments; both are attached
// during graph construction.
func NewGroup(name Id, attrs Attributes) *Group {
	return &Group{name: name, attributes: attrs.Clone()}
}

// AddHole appends a hole port. Graph construction only.
func (g *Group) AddHole(p *Port) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.holes = append(g.holes, p)
}

// SetAssignments installs the group's assignment list. Graph construction
// only; assignments are immutable once built.
func (g *Group) SetAssignments(asgns []Assignment[Nothing]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.assignments = asgns
}

// Name returns the group's name.
func (g *Group) Name() Id {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

// Assignments returns a copy of the group's assignment list.
func (g *Group) Assignments() []Assignment[Nothing] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Assignment[Nothing], len(g.assignments))
	copy(out, g.assignments)
	return out
}

// Holes returns a copy of the group's hole ports.
func (g *Group) Holes() []*Port {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Port, len(g.holes))
	copy(out, g.holes)
	return out
}

// FindHole returns the named hole if present.
func (g *Group) FindHole(name Id) (*Port, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, h := range g.holes {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// Hole returns the named hole. Every well-formed group is guaranteed by
// upstream construction to expose go and done, so absence is fatal: the
// call panics with a *StructuralError naming the hole and the group.
func (g *Group) Hole(name Id) *Port {
	h, ok := g.FindHole(name)
	if !ok {
		panic(&StructuralError{
			Code:      ErrCodeMissingHole,
			Entity:    name,
			Container: g.Name(),
			Op:        "Group.Hole",
		})
	}
	return h
}

// HasAttribute reports whether the group carries the attribute.
func (g *Group) HasAttribute(name Id) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.attributes.Has(name)
}

// Attributes returns a copy of the group's attribute set.
func (g *Group) Attributes() Attributes {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.attributes.Clone()
}

// CombGroup is a purely combinational group: no go/done handshake, used to
// make a control condition port valid while it is being read.
type CombGroup struct {
	mu          sync.RWMutex
	name        Id
	assignments []Assignment[Nothing]
	attributes  Attributes
}

// NewCombGroup creates a combinational group with no assignments.
func NewCombGroup(name Id, attrs Attributes) *CombGroup {
	return &CombGroup{name: name, attributes: attrs.Clone()}
}

// SetAssignments installs the group's assignment list. Graph construction
// only.
func (g *CombGroup) SetAssignments(asgns []Assignment[Nothing]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.assignments = asgns
}

// Name returns the group's name.
func (g *CombGroup) Name() Id {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

// Assignments returns a copy of the group's assignment list.
func (g *CombGroup) Assignments() []Assignment[Nothing] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Assignment[Nothing], len(g.assignments))
	copy(out, g.assignments)
	return out
}

// Attributes returns a copy of the group's attribute set.
func (g *CombGroup) Attributes() Attributes {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.attributes.Clone()
}
