package translator

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/EclecticGriffin/cider-parallel-test/internal/cir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
)

// TranslationMap memoizes one translation session. Four independent maps key
// the address identity of each source node to the already constructed shared
// handle; a key that is present is returned without reconstruction or
// re-visiting of children.
//
// Not safe for concurrent use: the graph is built single-threaded and only
// the finished graph is shared.
type TranslationMap struct {
	session    string
	cells      map[*cir.Cell]*ir.Cell
	ports      map[*cir.Port]*ir.Port
	groups     map[*cir.Group]*ir.Group
	combGroups map[*cir.CombGroup]*ir.CombGroup
}

// New creates an empty translation session.
func New() *TranslationMap {
	return &TranslationMap{
		session:    uuid.NewString(),
		cells:      make(map[*cir.Cell]*ir.Cell),
		ports:      make(map[*cir.Port]*ir.Port),
		groups:     make(map[*cir.Group]*ir.Group),
		combGroups: make(map[*cir.CombGroup]*ir.CombGroup),
	}
}

// Session returns the session token included in logs and diagnostics.
func (t *TranslationMap) Session() string {
	return t.session
}

// Translate converts a source component in a fresh session.
func Translate(src *cir.Component) (*ir.Component, error) {
	return New().Component(src)
}

// Component translates a whole component: signature, cells, groups, comb
// groups, continuous assignments and control, in source order. No partial
// component is returned on failure.
func (t *TranslationMap) Component(src *cir.Component) (*ir.Component, error) {
	signature, err := t.Cell(src.Signature)
	if err != nil {
		return nil, fmt.Errorf("translate component %q signature: %w", src.Name, err)
	}

	cells := make([]*ir.Cell, 0, len(src.Cells))
	for _, c := range src.Cells {
		cell, err := t.Cell(c)
		if err != nil {
			return nil, fmt.Errorf("translate component %q: %w", src.Name, err)
		}
		cells = append(cells, cell)
	}

	groups := make([]*ir.Group, 0, len(src.Groups))
	for _, g := range src.Groups {
		group, err := t.Group(g)
		if err != nil {
			return nil, fmt.Errorf("translate component %q: %w", src.Name, err)
		}
		groups = append(groups, group)
	}

	combGroups := make([]*ir.CombGroup, 0, len(src.CombGroups))
	for _, cg := range src.CombGroups {
		combGroup, err := t.CombGroup(cg)
		if err != nil {
			return nil, fmt.Errorf("translate component %q: %w", src.Name, err)
		}
		combGroups = append(combGroups, combGroup)
	}

	continuous := make([]ir.Assignment[ir.Nothing], 0, len(src.Continuous))
	for _, a := range src.Continuous {
		asgn, err := Assignment(t, a)
		if err != nil {
			return nil, fmt.Errorf("translate component %q continuous assignments: %w", src.Name, err)
		}
		continuous = append(continuous, asgn)
	}

	control, err := t.Control(src.Control)
	if err != nil {
		return nil, fmt.Errorf("translate component %q control: %w", src.Name, err)
	}

	comp := ir.NewComponent(
		src.Name,
		signature,
		cells,
		groups,
		combGroups,
		continuous,
		control,
		src.Attributes,
	)

	slog.Debug("component translated",
		"session", t.session,
		"component", src.Name,
		"cells", len(t.cells),
		"ports", len(t.ports),
		"groups", len(t.groups),
		"comb_groups", len(t.combGroups),
	)

	return comp, nil
}

// Cell returns the handle for a source cell, constructing it on first
// request. The shell is inserted into the table before its ports are
// translated so that port translation, which reaches back through the
// parent, terminates.
func (t *TranslationMap) Cell(src *cir.Cell) (*ir.Cell, error) {
	if v, ok := t.cells[src]; ok {
		return v, nil
	}
	cell := ir.NewCell(src.Name, src.Prototype, src.Reference, src.Attributes)
	t.cells[src] = cell
	for _, p := range src.Ports {
		port, err := t.Port(p)
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", src.Name, err)
		}
		cell.AddPort(port)
	}
	return cell, nil
}

// Port returns the handle for a source port, constructing it on first
// request. Resolving the parent may itself translate this port, so the table
// is consulted again before constructing.
func (t *TranslationMap) Port(src *cir.Port) (*ir.Port, error) {
	if v, ok := t.ports[src]; ok {
		return v, nil
	}

	var parent ir.PortParent
	switch par := src.Parent.(type) {
	case cir.CellParent:
		owner, err := t.Cell(par.Cell)
		if err != nil {
			return nil, err
		}
		if v, ok := t.ports[src]; ok {
			return v, nil
		}
		parent = ir.NewCellParent(owner)
	case cir.GroupParent:
		owner, err := t.Group(par.Group)
		if err != nil {
			return nil, err
		}
		if v, ok := t.ports[src]; ok {
			return v, nil
		}
		parent = ir.NewGroupParent(owner)
	case cir.StaticGroupParent:
		return nil, fmt.Errorf("port %q is owned by static group %q: %w",
			src.Name, par.Group.Name, ir.ErrUnsupported)
	default:
		return nil, fmt.Errorf("port %q has parent %T: %w", src.Name, src.Parent, ir.ErrMalformed)
	}

	port := ir.NewPort(src.Name, src.Width, src.Direction, parent, src.Attributes)
	t.ports[src] = port
	return port, nil
}

// Group returns the handle for a source group, constructing it on first
// request. Like cells, the shell is inserted before holes and assignments
// are translated.
func (t *TranslationMap) Group(src *cir.Group) (*ir.Group, error) {
	if v, ok := t.groups[src]; ok {
		return v, nil
	}
	group := ir.NewGroup(src.Name, src.Attributes)
	t.groups[src] = group
	for _, h := range src.Holes {
		hole, err := t.Port(h)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", src.Name, err)
		}
		group.AddHole(hole)
	}
	asgns := make([]ir.Assignment[ir.Nothing], 0, len(src.Assignments))
	for _, a := range src.Assignments {
		asgn, err := Assignment(t, a)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", src.Name, err)
		}
		asgns = append(asgns, asgn)
	}
	group.SetAssignments(asgns)
	return group, nil
}

// CombGroup returns the handle for a source combinational group,
// constructing it on first request.
func (t *TranslationMap) CombGroup(src *cir.CombGroup) (*ir.CombGroup, error) {
	if v, ok := t.combGroups[src]; ok {
		return v, nil
	}
	group := ir.NewCombGroup(src.Name, src.Attributes)
	t.combGroups[src] = group
	asgns := make([]ir.Assignment[ir.Nothing], 0, len(src.Assignments))
	for _, a := range src.Assignments {
		asgn, err := Assignment(t, a)
		if err != nil {
			return nil, fmt.Errorf("comb group %q: %w", src.Name, err)
		}
		asgns = append(asgns, asgn)
	}
	group.SetAssignments(asgns)
	return group, nil
}

// Assignment translates one guarded assignment. Assignments are values, not
// shared nodes, so they are rebuilt (over shared port handles) rather than
// memoized.
func Assignment[T any](t *TranslationMap, src cir.Assignment[T]) (ir.Assignment[T], error) {
	dst, err := t.Port(src.Dst)
	if err != nil {
		return ir.Assignment[T]{}, fmt.Errorf("assignment destination: %w", err)
	}
	from, err := t.Port(src.Src)
	if err != nil {
		return ir.Assignment[T]{}, fmt.Errorf("assignment source: %w", err)
	}
	guard, err := Guard(t, src.Guard)
	if err != nil {
		return ir.Assignment[T]{}, fmt.Errorf("assignment guard: %w", err)
	}
	return ir.Assignment[T]{
		Dst:        dst,
		Src:        from,
		Guard:      guard,
		Attributes: src.Attributes.Clone(),
	}, nil
}

// Guard translates a guard expression tree, sharing the port handles it
// references.
func Guard[T any](t *TranslationMap, src cir.Guard[T]) (ir.Guard[T], error) {
	switch g := src.(type) {
	case cir.OrGuard[T]:
		left, err := Guard(t, g.Left)
		if err != nil {
			return nil, err
		}
		right, err := Guard(t, g.Right)
		if err != nil {
			return nil, err
		}
		return ir.OrGuard[T]{Left: left, Right: right}, nil
	case cir.AndGuard[T]:
		left, err := Guard(t, g.Left)
		if err != nil {
			return nil, err
		}
		right, err := Guard(t, g.Right)
		if err != nil {
			return nil, err
		}
		return ir.AndGuard[T]{Left: left, Right: right}, nil
	case cir.NotGuard[T]:
		inner, err := Guard(t, g.Inner)
		if err != nil {
			return nil, err
		}
		return ir.NotGuard[T]{Inner: inner}, nil
	case cir.TrueGuard[T]:
		return ir.TrueGuard[T]{}, nil
	case cir.CompOpGuard[T]:
		left, err := t.Port(g.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.Port(g.Right)
		if err != nil {
			return nil, err
		}
		return ir.CompOpGuard[T]{Op: g.Op, Left: left, Right: right}, nil
	case cir.PortGuard[T]:
		port, err := t.Port(g.Port)
		if err != nil {
			return nil, err
		}
		return ir.PortGuard[T]{Port: port}, nil
	case cir.InfoGuard[T]:
		return ir.InfoGuard[T]{Info: g.Info}, nil
	default:
		return nil, fmt.Errorf("guard %T: %w", src, ir.ErrMalformed)
	}
}

// Control translates a control subtree. A nil source control is the empty
// program. Statically scheduled constructs are refused outright: partial
// translation would silently drop semantics.
func (t *TranslationMap) Control(src cir.Control) (ir.Control, error) {
	switch node := src.(type) {
	case nil:
		return &ir.Empty{}, nil
	case *cir.Seq:
		stmts, err := t.controlList(node.Stmts)
		if err != nil {
			return nil, err
		}
		return &ir.Seq{Stmts: stmts, Attributes: node.Attributes.Clone()}, nil
	case *cir.Par:
		stmts, err := t.controlList(node.Stmts)
		if err != nil {
			return nil, err
		}
		return &ir.Par{Stmts: stmts, Attributes: node.Attributes.Clone()}, nil
	case *cir.If:
		port, err := t.Port(node.Port)
		if err != nil {
			return nil, err
		}
		cond, err := t.optionalCombGroup(node.Cond)
		if err != nil {
			return nil, err
		}
		tbranch, err := t.Control(node.TrueBranch)
		if err != nil {
			return nil, err
		}
		fbranch, err := t.Control(node.FalseBranch)
		if err != nil {
			return nil, err
		}
		return &ir.If{
			Port:        port,
			Cond:        cond,
			TrueBranch:  tbranch,
			FalseBranch: fbranch,
			Attributes:  node.Attributes.Clone(),
		}, nil
	case *cir.While:
		port, err := t.Port(node.Port)
		if err != nil {
			return nil, err
		}
		cond, err := t.optionalCombGroup(node.Cond)
		if err != nil {
			return nil, err
		}
		body, err := t.Control(node.Body)
		if err != nil {
			return nil, err
		}
		return &ir.While{
			Port:       port,
			Cond:       cond,
			Body:       body,
			Attributes: node.Attributes.Clone(),
		}, nil
	case *cir.Invoke:
		return t.invoke(node)
	case *cir.Enable:
		group, err := t.Group(node.Group)
		if err != nil {
			return nil, err
		}
		return &ir.Enable{Group: group, Attributes: node.Attributes.Clone()}, nil
	case *cir.Empty:
		return &ir.Empty{Attributes: node.Attributes.Clone()}, nil
	case *cir.StaticEnable:
		return nil, fmt.Errorf("static group %q enabled in control: %w",
			node.Group.Name, ir.ErrUnsupported)
	case *cir.Repeat:
		return nil, fmt.Errorf("repeat control: %w", ir.ErrUnsupported)
	default:
		return nil, fmt.Errorf("control %T: %w", src, ir.ErrMalformed)
	}
}

func (t *TranslationMap) controlList(stmts []cir.Control) ([]ir.Control, error) {
	out := make([]ir.Control, 0, len(stmts))
	for _, s := range stmts {
		stmt, err := t.Control(s)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func (t *TranslationMap) optionalCombGroup(src *cir.CombGroup) (*ir.CombGroup, error) {
	if src == nil {
		return nil, nil
	}
	return t.CombGroup(src)
}

// invoke translates an Invoke node. Duplicate names within one binding list
// are a reportable malformation: the upstream binding semantics are
// unconfirmed, so neither occurrence is silently picked.
func (t *TranslationMap) invoke(src *cir.Invoke) (*ir.Invoke, error) {
	cell, err := t.Cell(src.Cell)
	if err != nil {
		return nil, err
	}
	inputs, err := t.portBindings(src.Cell.Name, "input", src.Inputs)
	if err != nil {
		return nil, err
	}
	outputs, err := t.portBindings(src.Cell.Name, "output", src.Outputs)
	if err != nil {
		return nil, err
	}
	cond, err := t.optionalCombGroup(src.CombGroup)
	if err != nil {
		return nil, err
	}

	refCells := make([]ir.CellBinding, 0, len(src.RefCells))
	seen := make(map[ir.Id]bool, len(src.RefCells))
	for _, b := range src.RefCells {
		if seen[b.Name] {
			return nil, fmt.Errorf("invoke of %q binds ref cell %q twice: %w",
				src.Cell.Name, b.Name, ir.ErrMalformed)
		}
		seen[b.Name] = true
		bound, err := t.Cell(b.Cell)
		if err != nil {
			return nil, err
		}
		refCells = append(refCells, ir.CellBinding{Name: b.Name, Cell: bound})
	}

	return &ir.Invoke{
		Cell:       cell,
		Inputs:     inputs,
		Outputs:    outputs,
		CombGroup:  cond,
		RefCells:   refCells,
		Attributes: src.Attributes.Clone(),
	}, nil
}

func (t *TranslationMap) portBindings(target ir.Id, kind string, binds []cir.PortBinding) ([]ir.PortBinding, error) {
	out := make([]ir.PortBinding, 0, len(binds))
	seen := make(map[ir.Id]bool, len(binds))
	for _, b := range binds {
		if seen[b.Name] {
			return nil, fmt.Errorf("invoke of %q binds %s %q twice: %w",
				target, kind, b.Name, ir.ErrMalformed)
		}
		seen[b.Name] = true
		port, err := t.Port(b.Port)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.PortBinding{Name: b.Name, Port: port})
	}
	return out, nil
}
