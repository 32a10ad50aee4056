package netlist

import (
	"fmt"
	"strings"

	"github.com/EclecticGriffin/cider-parallel-test/internal/cir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
)

// Build materializes the description as a compiler-internal graph. All name
// references are resolved; an unknown cell, group, hole or port is an error
// naming the reference and where it appeared.
func (s *Spec) Build() (*cir.Component, error) {
	b := &builder{
		cells:      make(map[string]*cir.Cell),
		groups:     make(map[string]*cir.Group),
		combGroups: make(map[string]*cir.CombGroup),
	}
	return b.build(s)
}

type builder struct {
	signature  *cir.Cell
	cells      map[string]*cir.Cell
	groups     map[string]*cir.Group
	combGroups map[string]*cir.CombGroup
}

func (b *builder) build(s *Spec) (*cir.Component, error) {
	comp := &cir.Component{Name: ir.NewId(s.Component)}

	sig, err := b.buildSignature(s)
	if err != nil {
		return nil, err
	}
	b.signature = sig
	comp.Signature = sig

	for _, cs := range s.Cells {
		cell, err := b.buildCell(cs)
		if err != nil {
			return nil, err
		}
		if _, dup := b.cells[cs.Name]; dup {
			return nil, fmt.Errorf("duplicate cell name %q", cs.Name)
		}
		b.cells[cs.Name] = cell
		comp.Cells = append(comp.Cells, cell)
	}

	// Group shells and holes come first so assignments in one group may
	// reference another group's holes.
	for _, gs := range s.Groups {
		if _, dup := b.groups[gs.Name]; dup {
			return nil, fmt.Errorf("duplicate group name %q", gs.Name)
		}
		g := &cir.Group{Name: ir.NewId(gs.Name)}
		g.Holes = []*cir.Port{
			{Name: ir.GoHole, Width: 1, Direction: ir.In, Parent: cir.GroupParent{Group: g}},
			{Name: ir.DoneHole, Width: 1, Direction: ir.Out, Parent: cir.GroupParent{Group: g}},
		}
		b.groups[gs.Name] = g
		comp.Groups = append(comp.Groups, g)
	}
	for _, gs := range s.Groups {
		g := b.groups[gs.Name]
		for i, as := range gs.Assignments {
			asgn, err := b.buildAssignment(as, g)
			if err != nil {
				return nil, fmt.Errorf("group %q assignment %d: %w", gs.Name, i, err)
			}
			g.Assignments = append(g.Assignments, asgn)
		}
	}

	for _, cgs := range s.CombGroups {
		if _, dup := b.combGroups[cgs.Name]; dup {
			return nil, fmt.Errorf("duplicate comb group name %q", cgs.Name)
		}
		cg := &cir.CombGroup{Name: ir.NewId(cgs.Name)}
		for i, as := range cgs.Assignments {
			asgn, err := b.buildAssignment(as, nil)
			if err != nil {
				return nil, fmt.Errorf("comb group %q assignment %d: %w", cgs.Name, i, err)
			}
			cg.Assignments = append(cg.Assignments, asgn)
		}
		b.combGroups[cgs.Name] = cg
		comp.CombGroups = append(comp.CombGroups, cg)
	}

	for i, as := range s.Continuous {
		asgn, err := b.buildAssignment(as, nil)
		if err != nil {
			return nil, fmt.Errorf("continuous assignment %d: %w", i, err)
		}
		comp.Continuous = append(comp.Continuous, asgn)
	}

	control, err := b.buildControl(s.Control)
	if err != nil {
		return nil, err
	}
	comp.Control = control

	return comp, nil
}

func (b *builder) buildSignature(s *Spec) (*cir.Cell, error) {
	sig := &cir.Cell{
		Name:      ir.NewId(s.Component),
		Prototype: ir.ThisComponentPrototype{},
	}
	for _, ps := range s.Ports {
		port, err := buildPort(ps, sig)
		if err != nil {
			return nil, fmt.Errorf("signature port %q: %w", ps.Name, err)
		}
		sig.Ports = append(sig.Ports, port)
	}
	return sig, nil
}

func (b *builder) buildCell(cs CellSpec) (*cir.Cell, error) {
	cell := &cir.Cell{Name: ir.NewId(cs.Name), Reference: cs.Ref}

	switch {
	case cs.Primitive != "" && cs.SubComponent == "" && cs.Constant == nil:
		proto := ir.PrimitivePrototype{Name: ir.NewId(cs.Primitive)}
		for _, p := range cs.Params {
			proto.Bindings = append(proto.Bindings, ir.ParameterBinding{
				Name:  ir.NewId(p.Name),
				Value: p.Value,
			})
		}
		cell.Prototype = proto
	case cs.SubComponent != "" && cs.Primitive == "" && cs.Constant == nil:
		cell.Prototype = ir.ComponentPrototype{Name: ir.NewId(cs.SubComponent)}
	case cs.Constant != nil && cs.Primitive == "" && cs.SubComponent == "":
		cell.Prototype = ir.ConstantPrototype{Val: cs.Constant.Value, Width: cs.Constant.Width}
	default:
		return nil, fmt.Errorf("cell %q: exactly one of primitive, component or constant must be set", cs.Name)
	}

	for _, ps := range cs.Ports {
		port, err := buildPort(ps, cell)
		if err != nil {
			return nil, fmt.Errorf("cell %q port %q: %w", cs.Name, ps.Name, err)
		}
		cell.Ports = append(cell.Ports, port)
	}

	// Constants drive a single out port; create it when the description
	// leaves it implicit.
	if c, ok := cell.Prototype.(ir.ConstantPrototype); ok {
		if _, has := cell.FindPort("out"); !has {
			cell.Ports = append(cell.Ports, &cir.Port{
				Name:      "out",
				Width:     c.Width,
				Direction: ir.Out,
				Parent:    cir.CellParent{Cell: cell},
			})
		}
	}

	return cell, nil
}

func buildPort(ps PortSpec, owner *cir.Cell) (*cir.Port, error) {
	dir, err := ir.ParseDirection(ps.Direction)
	if err != nil {
		return nil, err
	}
	return &cir.Port{
		Name:      ir.NewId(ps.Name),
		Width:     ps.Width,
		Direction: dir,
		Parent:    cir.CellParent{Cell: owner},
	}, nil
}

// resolvePort resolves a port path. Paths take the form "owner.port" where
// owner is a cell, a group (hole access) or "this" (the signature); inside a
// group, a bare "go" or "done" names the group's own hole.
func (b *builder) resolvePort(path string, current *cir.Group) (*cir.Port, error) {
	owner, portName, found := strings.Cut(path, ".")
	if !found {
		if current == nil {
			return nil, fmt.Errorf("port reference %q has no owner", path)
		}
		hole, ok := current.FindHole(ir.NewId(path))
		if !ok {
			return nil, fmt.Errorf("group %q has no hole %q", current.Name, path)
		}
		return hole, nil
	}

	name := ir.NewId(portName)
	if owner == "this" {
		p, ok := b.signature.FindPort(name)
		if !ok {
			return nil, fmt.Errorf("signature has no port %q", portName)
		}
		return p, nil
	}
	if cell, ok := b.cells[owner]; ok {
		p, ok := cell.FindPort(name)
		if !ok {
			return nil, fmt.Errorf("cell %q has no port %q", owner, portName)
		}
		return p, nil
	}
	if group, ok := b.groups[owner]; ok {
		p, ok := group.FindHole(name)
		if !ok {
			return nil, fmt.Errorf("group %q has no hole %q", owner, portName)
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown port owner %q in %q", owner, path)
}

func (b *builder) buildAssignment(as AssignSpec, current *cir.Group) (cir.Assignment[ir.Nothing], error) {
	dst, err := b.resolvePort(as.Dst, current)
	if err != nil {
		return cir.Assignment[ir.Nothing]{}, err
	}
	src, err := b.resolvePort(as.Src, current)
	if err != nil {
		return cir.Assignment[ir.Nothing]{}, err
	}
	guard, err := b.buildGuard(as.Guard, current)
	if err != nil {
		return cir.Assignment[ir.Nothing]{}, err
	}
	return cir.Assignment[ir.Nothing]{Dst: dst, Src: src, Guard: guard}, nil
}

func (b *builder) buildGuard(expr string, current *cir.Group) (cir.Guard[ir.Nothing], error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return cir.TrueGuard[ir.Nothing]{}, nil
	}
	if negated, ok := strings.CutPrefix(expr, "!"); ok {
		port, err := b.resolvePort(strings.TrimSpace(negated), current)
		if err != nil {
			return nil, fmt.Errorf("guard %q: %w", expr, err)
		}
		return cir.NotGuard[ir.Nothing]{Inner: cir.PortGuard[ir.Nothing]{Port: port}}, nil
	}
	port, err := b.resolvePort(expr, current)
	if err != nil {
		return nil, fmt.Errorf("guard %q: %w", expr, err)
	}
	return cir.PortGuard[ir.Nothing]{Port: port}, nil
}

func (b *builder) buildControl(cs *ControlSpec) (cir.Control, error) {
	if cs == nil {
		return &cir.Empty{}, nil
	}

	set := 0
	if len(cs.Seq) > 0 {
		set++
	}
	if len(cs.Par) > 0 {
		set++
	}
	for _, present := range []bool{cs.If != nil, cs.While != nil, cs.Invoke != nil, cs.Enable != "", cs.Empty} {
		if present {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("control node sets more than one of seq, par, if, while, invoke, enable, empty")
	}

	switch {
	case len(cs.Seq) > 0:
		stmts, err := b.buildControlList(cs.Seq)
		if err != nil {
			return nil, err
		}
		return &cir.Seq{Stmts: stmts}, nil
	case len(cs.Par) > 0:
		stmts, err := b.buildControlList(cs.Par)
		if err != nil {
			return nil, err
		}
		return &cir.Par{Stmts: stmts}, nil
	case cs.If != nil:
		port, err := b.resolvePort(cs.If.Port, nil)
		if err != nil {
			return nil, fmt.Errorf("if condition: %w", err)
		}
		cond, err := b.optionalCombGroup(cs.If.Cond)
		if err != nil {
			return nil, fmt.Errorf("if condition: %w", err)
		}
		tbranch, err := b.buildControl(cs.If.Then)
		if err != nil {
			return nil, err
		}
		fbranch, err := b.buildControl(cs.If.Else)
		if err != nil {
			return nil, err
		}
		return &cir.If{Port: port, Cond: cond, TrueBranch: tbranch, FalseBranch: fbranch}, nil
	case cs.While != nil:
		port, err := b.resolvePort(cs.While.Port, nil)
		if err != nil {
			return nil, fmt.Errorf("while condition: %w", err)
		}
		cond, err := b.optionalCombGroup(cs.While.Cond)
		if err != nil {
			return nil, fmt.Errorf("while condition: %w", err)
		}
		body, err := b.buildControl(cs.While.Body)
		if err != nil {
			return nil, err
		}
		return &cir.While{Port: port, Cond: cond, Body: body}, nil
	case cs.Invoke != nil:
		return b.buildInvoke(cs.Invoke)
	case cs.Enable != "":
		g, ok := b.groups[cs.Enable]
		if !ok {
			return nil, fmt.Errorf("enable references unknown group %q", cs.Enable)
		}
		return &cir.Enable{Group: g}, nil
	default:
		return &cir.Empty{}, nil
	}
}

func (b *builder) buildControlList(specs []ControlSpec) ([]cir.Control, error) {
	out := make([]cir.Control, 0, len(specs))
	for i := range specs {
		node, err := b.buildControl(&specs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func (b *builder) buildInvoke(is *InvokeSpec) (cir.Control, error) {
	cell, ok := b.cells[is.Cell]
	if !ok {
		return nil, fmt.Errorf("invoke references unknown cell %q", is.Cell)
	}
	inv := &cir.Invoke{Cell: cell}
	for _, bind := range is.Inputs {
		port, err := b.resolvePort(bind.Port, nil)
		if err != nil {
			return nil, fmt.Errorf("invoke of %q input %q: %w", is.Cell, bind.Name, err)
		}
		inv.Inputs = append(inv.Inputs, cir.PortBinding{Name: ir.NewId(bind.Name), Port: port})
	}
	for _, bind := range is.Outputs {
		port, err := b.resolvePort(bind.Port, nil)
		if err != nil {
			return nil, fmt.Errorf("invoke of %q output %q: %w", is.Cell, bind.Name, err)
		}
		inv.Outputs = append(inv.Outputs, cir.PortBinding{Name: ir.NewId(bind.Name), Port: port})
	}
	cond, err := b.optionalCombGroup(is.Cond)
	if err != nil {
		return nil, fmt.Errorf("invoke of %q: %w", is.Cell, err)
	}
	inv.CombGroup = cond
	return inv, nil
}

func (b *builder) optionalCombGroup(name string) (*cir.CombGroup, error) {
	if name == "" {
		return nil, nil
	}
	cg, ok := b.combGroups[name]
	if !ok {
		return nil, fmt.Errorf("unknown comb group %q", name)
	}
	return cg, nil
}
