package ir

// Control is one node of the hierarchical schedule governing which groups
// run when. Non-leaf nodes own their children outright; Enable, Invoke, If
// and While additionally hold shared references to entities owned by the
// component's collections.
type Control interface {
	isControl()
}

// Seq runs its children in order; each fully settles before the next begins.
type Seq struct {
	Stmts      []Control
	Attributes Attributes
}

// Par runs its children concurrently and settles when all of them have.
type Par struct {
	Stmts      []Control
	Attributes Attributes
}

// If evaluates the condition port, after activating the optional
// combinational group that makes it valid, and runs exactly one branch.
// The scheduler is responsible for activating Cond's assignments while the
// port is being sampled; this layer only keeps the two together.
type If struct {
	Port        *Port
	Cond        *CombGroup // may be nil
	TrueBranch  Control
	FalseBranch Control
	Attributes  Attributes
}

// While repeats its body while the condition port reads true, re-evaluating
// the condition (and optional combinational group) before every iteration.
type While struct {
	Port       *Port
	Cond       *CombGroup // may be nil
	Body       Control
	Attributes Attributes
}

// PortBinding is one (name, port) pair of an Invoke's parameter map. The
// list is ordered and duplicates are not collapsed at this layer.
type PortBinding struct {
	Name Id
	Port *Port
}

// CellBinding is one (name, cell) pair of an Invoke's ref-cell map.
type CellBinding struct {
	Name Id
	Cell *Cell
}

// Invoke binds a sub-component's ports for a single activation.
type Invoke struct {
	Cell       *Cell
	Inputs     []PortBinding
	Outputs    []PortBinding
	CombGroup  *CombGroup // may be nil
	RefCells   []CellBinding
	Attributes Attributes
}

// Enable activates exactly one group and waits for its done hole.
type Enable struct {
	Group      *Group
	Attributes Attributes
}

// Empty is the no-op leaf.
type Empty struct {
	Attributes Attributes
}

func (*Seq) isControl()    {}
func (*Par) isControl()    {}
func (*If) isControl()     {}
func (*While) isControl()  {}
func (*Invoke) isControl() {}
func (*Enable) isControl() {}
func (*Empty) isControl()  {}
