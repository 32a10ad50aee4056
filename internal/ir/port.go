package ir

import (
	"sync"
	"weak"
)

// PortParent identifies the owner of a port: either a Cell or a Group. The
// reference is weak so the Port→parent edge never keeps its owner alive; the
// Component's collections are the authoritative liveness root.
type PortParent interface {
	isPortParent()

	// ParentName returns the owner's name. Panics with a *StructuralError
	// if the owner has been destroyed.
	ParentName() Id
}

// CellParent is a weak back-reference to the Cell owning a port.
type CellParent struct {
	ref weak.Pointer[Cell]
}

// GroupParent is a weak back-reference to the Group owning a hole.
type GroupParent struct {
	ref weak.Pointer[Group]
}

// NewCellParent creates a non-owning reference to c.
func NewCellParent(c *Cell) CellParent {
	return CellParent{ref: weak.Make(c)}
}

// NewGroupParent creates a non-owning reference to g.
func NewGroupParent(g *Group) GroupParent {
	return GroupParent{ref: weak.Make(g)}
}

func (CellParent) isPortParent()  {}
func (GroupParent) isPortParent() {}

// Cell upgrades the back-reference. Owners outlive their ports under normal
// operation, so a dead reference is a contract violation and panics rather
// than silently returning nil.
func (p CellParent) Cell() *Cell {
	c := p.ref.Value()
	if c == nil {
		panic(&StructuralError{Code: ErrCodeDeadParent, Op: "CellParent.Cell", Entity: "<collected cell>"})
	}
	return c
}

// Group upgrades the back-reference, panicking if the owner is gone.
func (p GroupParent) Group() *Group {
	g := p.ref.Value()
	if g == nil {
		panic(&StructuralError{Code: ErrCodeDeadParent, Op: "GroupParent.Group", Entity: "<collected group>"})
	}
	return g
}

func (p CellParent) ParentName() Id  { return p.Cell().Name() }
func (p GroupParent) ParentName() Id { return p.Group().Name() }

// Port is a named, fixed-width, directional wire endpoint owned by exactly
// one Cell or Group. Width and direction are fixed at creation.
type Port struct {
	mu         sync.RWMutex
	name       Id
	width      uint64
	direction  Direction
	parent     PortParent
	attributes Attributes
}

// NewPort creates a port. The parent reference must be built from an already
// constructed owner.
func NewPort(name Id, width uint64, direction Direction, parent PortParent, attrs Attributes) *Port {
	return &Port{
		name:       name,
		width:      width,
		direction:  direction,
		parent:     parent,
		attributes: attrs.Clone(),
	}
}

// Name returns the port's name.
func (p *Port) Name() Id {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

// Width returns the port's bit width.
func (p *Port) Width() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.width
}

// Direction returns the port's direction.
func (p *Port) Direction() Direction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.direction
}

// Parent returns the weak back-reference to the port's owner.
func (p *Port) Parent() PortParent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.parent
}

// HasAttribute reports whether the port carries the attribute.
func (p *Port) HasAttribute(name Id) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attributes.Has(name)
}

// Attribute returns the attribute's value and presence.
func (p *Port) Attribute(name Id) (uint64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attributes.Get(name)
}

// Attributes returns a copy of the port's attribute set.
func (p *Port) Attributes() Attributes {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attributes.Clone()
}

// SetAttribute stores an attribute, taking the port's write lock.
func (p *Port) SetAttribute(name Id, value uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attributes == nil {
		p.attributes = Attributes{}
	}
	p.attributes.Set(name, value)
}

// CanonicalName renders the port as parent.name, the form used in
// diagnostics and the printer.
func (p *Port) CanonicalName() string {
	return string(p.Parent().ParentName()) + "." + string(p.Name())
}
