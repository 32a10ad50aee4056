package ir

// NamedList is an insertion-ordered, name-unique collection of graph nodes.
// Names are unique by construction upstream, so inserting a duplicate is a
// precondition violation and panics with a *StructuralError.
type NamedList[T interface{ Name() Id }] struct {
	order []T
	index map[Id]T
}

// Add appends v, indexing it by name.
func (l *NamedList[T]) Add(v T) {
	if l.index == nil {
		l.index = make(map[Id]T)
	}
	name := v.Name()
	if _, ok := l.index[name]; ok {
		panic(&StructuralError{
			Code:   ErrCodeDuplicateName,
			Entity: name,
			Op:     "NamedList.Add",
		})
	}
	l.index[name] = v
	l.order = append(l.order, v)
}

// Find returns the element with the given name, if present.
func (l *NamedList[T]) Find(name Id) (T, bool) {
	v, ok := l.index[name]
	return v, ok
}

// Len returns the number of elements.
func (l *NamedList[T]) Len() int {
	return len(l.order)
}

// All returns the elements in insertion order. The returned slice is a copy.
func (l *NamedList[T]) All() []T {
	out := make([]T, len(l.order))
	copy(out, l.order)
	return out
}

// Component is a named unit bundling cells, groups, combinational groups,
// continuous assignments and one control tree. It is built once by the
// translator and immutable in topology thereafter; only primitive cell
// state, owned by the external simulator, mutates over time.
type Component struct {
	name       Id
	signature  *Cell
	cells      NamedList[*Cell]
	groups     NamedList[*Group]
	combGroups NamedList[*CombGroup]
	continuous []Assignment[Nothing]
	control    Control
	attributes Attributes
}

// NewComponent assembles a component from already translated parts. The
// lists index their elements by name; duplicate names in the source are a
// precondition violation.
func NewComponent(
	name Id,
	signature *Cell,
	cells []*Cell,
	groups []*Group,
	combGroups []*CombGroup,
	continuous []Assignment[Nothing],
	control Control,
	attrs Attributes,
) *Component {
	c := &Component{
		name:       name,
		signature:  signature,
		continuous: continuous,
		control:    control,
		attributes: attrs.Clone(),
	}
	for _, cell := range cells {
		c.cells.Add(cell)
	}
	for _, g := range groups {
		c.groups.Add(g)
	}
	for _, cg := range combGroups {
		c.combGroups.Add(cg)
	}
	return c
}

// Name returns the component's name.
func (c *Component) Name() Id {
	return c.name
}

// Signature returns the cell modeling the component's own input/output
// interface.
func (c *Component) Signature() *Cell {
	return c.signature
}

// FindCell returns the named cell, if present.
func (c *Component) FindCell(name Id) (*Cell, bool) {
	return c.cells.Find(name)
}

// FindGroup returns the named group, if present.
func (c *Component) FindGroup(name Id) (*Group, bool) {
	return c.groups.Find(name)
}

// FindCombGroup returns the named combinational group, if present.
func (c *Component) FindCombGroup(name Id) (*CombGroup, bool) {
	return c.combGroups.Find(name)
}

// Cells returns the component's cells in insertion order.
func (c *Component) Cells() []*Cell {
	return c.cells.All()
}

// Groups returns the component's groups in insertion order.
func (c *Component) Groups() []*Group {
	return c.groups.All()
}

// CombGroups returns the component's combinational groups in insertion
// order.
func (c *Component) CombGroups() []*CombGroup {
	return c.combGroups.All()
}

// ContinuousAssignments returns the assignments that are always logically
// active, layered underneath whatever the control tree is running. The
// returned slice is a copy.
func (c *Component) ContinuousAssignments() []Assignment[Nothing] {
	out := make([]Assignment[Nothing], len(c.continuous))
	copy(out, c.continuous)
	return out
}

// Control returns the component's control tree.
func (c *Component) Control() Control {
	return c.control
}

// Attributes returns a copy of the component's attribute set.
func (c *Component) Attributes() Attributes {
	return c.attributes.Clone()
}
