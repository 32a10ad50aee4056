package ir

import "sync"

// CellPrototype tags what a cell instantiates.
type CellPrototype interface {
	isCellPrototype()
}

// ParameterBinding is one named parameter of a primitive instantiation.
type ParameterBinding struct {
	Name  Id
	Value uint64
}

// PrimitivePrototype marks an instance of a primitive with its parameter
// bindings, in declaration order.
type PrimitivePrototype struct {
	Name     Id
	Bindings []ParameterBinding
}

// ComponentPrototype marks an instance of another component.
type ComponentPrototype struct {
	Name Id
}

// ConstantPrototype marks a constant driver of the given value and width.
type ConstantPrototype struct {
	Val   uint64
	Width uint64
}

// ThisComponentPrototype marks the pseudo-cell standing for the enclosing
// component's own boundary.
type ThisComponentPrototype struct{}

func (PrimitivePrototype) isCellPrototype()     {}
func (ComponentPrototype) isCellPrototype()     {}
func (ConstantPrototype) isCellPrototype()      {}
func (ThisComponentPrototype) isCellPrototype() {}

// Cell is an instantiated hardware unit. A cell exclusively owns its ports;
// ports never outlive their owning cell.
type Cell struct {
	mu         sync.RWMutex
	name       Id
	ports      []*Port
	prototype  CellPrototype
	attributes Attributes
	reference  bool
}

// NewCell creates a cell with no ports. Ports are attached during graph
// construction via AddPort.
func NewCell(name Id, prototype CellPrototype, reference bool, attrs Attributes) *Cell {
	return &Cell{
		name:       name,
		prototype:  prototype,
		reference:  reference,
		attributes: attrs.Clone(),
	}
}

// AddPort appends a port to the cell's ordered port list. Graph construction
// only; topology is immutable once the owning component is built.
func (c *Cell) AddPort(p *Port) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ports = append(c.ports, p)
}

// Name returns the cell's name.
func (c *Cell) Name() Id {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// Prototype returns the cell's prototype tag.
func (c *Cell) Prototype() CellPrototype {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prototype
}

// IsReference reports whether this is an external, by-reference cell bound at
// invocation time rather than instantiated here.
func (c *Cell) IsReference() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reference
}

// Ports returns a copy of the cell's ordered port list.
func (c *Cell) Ports() []*Port {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Port, len(c.ports))
	copy(out, c.ports)
	return out
}

// FindPort returns the named port if present.
func (c *Cell) FindPort(name Id) (*Port, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.ports {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Port returns the named port. It is used where the port is structurally
// guaranteed to exist, such as the well-known ports of primitives, and
// panics with a *StructuralError if the port is absent.
func (c *Cell) Port(name Id) *Port {
	p, ok := c.FindPort(name)
	if !ok {
		panic(&StructuralError{
			Code:      ErrCodeMissingPort,
			Entity:    name,
			Container: c.Name(),
			Op:        "Cell.Port",
		})
	}
	return p
}

// Parameter returns the value bound to a primitive parameter. The second
// return is false for non-primitive prototypes and for unknown names.
func (c *Cell) Parameter(name Id) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	proto, ok := c.prototype.(PrimitivePrototype)
	if !ok {
		return 0, false
	}
	for _, b := range proto.Bindings {
		if b.Name == name {
			return b.Value, true
		}
	}
	return 0, false
}

// PortsWithAttribute returns every port carrying the attribute, in port
// order.
func (c *Cell) PortsWithAttribute(attr Id) []*Port {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*Port
	for _, p := range c.ports {
		if p.HasAttribute(attr) {
			out = append(out, p)
		}
	}
	return out
}

// UniquePortWithAttribute returns the single port carrying the attribute, or
// nil if no port does. If more than one port carries it the graph is
// malformed and an *AmbiguousAttributeError naming the cell is returned.
func (c *Cell) UniquePortWithAttribute(attr Id) (*Port, error) {
	matches := c.PortsWithAttribute(attr)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, &AmbiguousAttributeError{
			Cell:      c.Name(),
			Attribute: attr,
			Count:     len(matches),
		}
	}
}
