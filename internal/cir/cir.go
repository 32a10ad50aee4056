package cir

import "github.com/EclecticGriffin/cider-parallel-test/internal/ir"

// PortParent is the owner of a source port.
type PortParent interface {
	isPortParent()
}

// CellParent marks a port owned by a cell.
type CellParent struct {
	Cell *Cell
}

// GroupParent marks a hole owned by a group.
type GroupParent struct {
	Group *Group
}

// StaticGroupParent marks a hole owned by a static group. The concurrent
// graph does not model static groups; translation fails on these.
type StaticGroupParent struct {
	Group *StaticGroup
}

func (CellParent) isPortParent()        {}
func (GroupParent) isPortParent()       {}
func (StaticGroupParent) isPortParent() {}

// Port is a source-side wire endpoint.
type Port struct {
	Name       ir.Id
	Width      uint64
	Direction  ir.Direction
	Parent     PortParent
	Attributes ir.Attributes
}

// Cell is a source-side instantiated unit.
type Cell struct {
	Name       ir.Id
	Ports      []*Port
	Prototype  ir.CellPrototype
	Attributes ir.Attributes
	Reference  bool
}

// FindPort returns the named port if present.
func (c *Cell) FindPort(name ir.Id) (*Port, bool) {
	for _, p := range c.Ports {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Group is a source-side named bundle of guarded assignments with handshake
// holes.
type Group struct {
	Name        ir.Id
	Assignments []Assignment[ir.Nothing]
	Holes       []*Port
	Attributes  ir.Attributes
}

// FindHole returns the named hole if present.
func (g *Group) FindHole(name ir.Id) (*Port, bool) {
	for _, h := range g.Holes {
		if h.Name == name {
			return h, true
		}
	}
	return nil, false
}

// StaticGroup is a statically scheduled group. Present so the translator can
// recognize and reject it; the concurrent model carries no equivalent.
type StaticGroup struct {
	Name       ir.Id
	Latency    uint64
	Attributes ir.Attributes
}

// CombGroup is a source-side purely combinational group.
type CombGroup struct {
	Name        ir.Id
	Assignments []Assignment[ir.Nothing]
	Attributes  ir.Attributes
}

// Guard is a source-side boolean expression over ports.
type Guard[T any] interface {
	isGuard(T)
}

// OrGuard is the disjunction of two guards.
type OrGuard[T any] struct {
	Left  Guard[T]
	Right Guard[T]
}

// AndGuard is the conjunction of two guards.
type AndGuard[T any] struct {
	Left  Guard[T]
	Right Guard[T]
}

// NotGuard negates its operand.
type NotGuard[T any] struct {
	Inner Guard[T]
}

// TrueGuard is the constant true.
type TrueGuard[T any] struct{}

// CompOpGuard compares the values carried by two ports.
type CompOpGuard[T any] struct {
	Op    ir.PortComp
	Left  *Port
	Right *Port
}

// PortGuard uses the truthiness of a single port's value.
type PortGuard[T any] struct {
	Port *Port
}

// InfoGuard carries an opaque pass-specific payload.
type InfoGuard[T any] struct {
	Info T
}

func (OrGuard[T]) isGuard(T)     {}
func (AndGuard[T]) isGuard(T)    {}
func (NotGuard[T]) isGuard(T)    {}
func (TrueGuard[T]) isGuard(T)   {}
func (CompOpGuard[T]) isGuard(T) {}
func (PortGuard[T]) isGuard(T)   {}
func (InfoGuard[T]) isGuard(T)   {}

// Assignment is a source-side guarded connection.
type Assignment[T any] struct {
	Dst        *Port
	Src        *Port
	Guard      Guard[T]
	Attributes ir.Attributes
}

// Control is a source-side schedule node.
type Control interface {
	isControl()
}

// Seq runs children in order.
type Seq struct {
	Stmts      []Control
	Attributes ir.Attributes
}

// Par runs children concurrently.
type Par struct {
	Stmts      []Control
	Attributes ir.Attributes
}

// If runs one of two branches depending on a condition port.
type If struct {
	Port        *Port
	Cond        *CombGroup // may be nil
	TrueBranch  Control
	FalseBranch Control
	Attributes  ir.Attributes
}

// While repeats its body while the condition port reads true.
type While struct {
	Port       *Port
	Cond       *CombGroup // may be nil
	Body       Control
	Attributes ir.Attributes
}

// PortBinding is one (name, port) pair of an Invoke's parameter map.
type PortBinding struct {
	Name ir.Id
	Port *Port
}

// CellBinding is one (name, cell) pair of an Invoke's ref-cell map.
type CellBinding struct {
	Name ir.Id
	Cell *Cell
}

// Invoke binds a sub-component's ports for one activation.
type Invoke struct {
	Cell       *Cell
	Inputs     []PortBinding
	Outputs    []PortBinding
	CombGroup  *CombGroup // may be nil
	RefCells   []CellBinding
	Attributes ir.Attributes
}

// Enable activates one group.
type Enable struct {
	Group      *Group
	Attributes ir.Attributes
}

// StaticEnable activates one static group. Recognized and rejected by the
// translator.
type StaticEnable struct {
	Group      *StaticGroup
	Attributes ir.Attributes
}

// Repeat runs its body a fixed number of times. Recognized and rejected by
// the translator.
type Repeat struct {
	Body       Control
	Count      uint64
	Attributes ir.Attributes
}

// Empty is the no-op leaf.
type Empty struct {
	Attributes ir.Attributes
}

func (*Seq) isControl()          {}
func (*Par) isControl()          {}
func (*If) isControl()           {}
func (*While) isControl()        {}
func (*Invoke) isControl()       {}
func (*Enable) isControl()       {}
func (*StaticEnable) isControl() {}
func (*Repeat) isControl()       {}
func (*Empty) isControl()        {}

// Component is a source-side component definition.
type Component struct {
	Name       ir.Id
	Signature  *Cell
	Cells      []*Cell
	Groups     []*Group
	CombGroups []*CombGroup
	Continuous []Assignment[ir.Nothing]
	Control    Control
	Attributes ir.Attributes
}
