// Package testutil builds small deterministic source graphs for tests.
package testutil

import (
	"github.com/EclecticGriffin/cider-parallel-test/internal/cir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
)

// PortDef describes one port of a cell under construction.
type PortDef struct {
	Name  string
	Width uint64
	Dir   ir.Direction
}

// Cell creates a source cell owning the given ports.
func Cell(name string, proto ir.CellPrototype, ports ...PortDef) *cir.Cell {
	c := &cir.Cell{Name: ir.NewId(name), Prototype: proto}
	for _, pd := range ports {
		c.Ports = append(c.Ports, &cir.Port{
			Name:      ir.NewId(pd.Name),
			Width:     pd.Width,
			Direction: pd.Dir,
			Parent:    cir.CellParent{Cell: c},
		})
	}
	return c
}

// Register creates a std_reg-like primitive cell with in, write_en, out and
// done ports of the given width.
func Register(name string, width uint64) *cir.Cell {
	return Cell(name,
		ir.PrimitivePrototype{
			Name:     "std_reg",
			Bindings: []ir.ParameterBinding{{Name: "WIDTH", Value: width}},
		},
		PortDef{Name: "in", Width: width, Dir: ir.In},
		PortDef{Name: "write_en", Width: 1, Dir: ir.In},
		PortDef{Name: "out", Width: width, Dir: ir.Out},
		PortDef{Name: "done", Width: 1, Dir: ir.Out},
	)
}

// Constant creates a constant cell with its out port.
func Constant(name string, val, width uint64) *cir.Cell {
	return Cell(name,
		ir.ConstantPrototype{Val: val, Width: width},
		PortDef{Name: "out", Width: width, Dir: ir.Out},
	)
}

// Group creates a source group with go and done holes and the given
// assignments.
func Group(name string, assignments ...cir.Assignment[ir.Nothing]) *cir.Group {
	g := &cir.Group{Name: ir.NewId(name)}
	g.Holes = []*cir.Port{
		{Name: ir.GoHole, Width: 1, Direction: ir.In, Parent: cir.GroupParent{Group: g}},
		{Name: ir.DoneHole, Width: 1, Direction: ir.Out, Parent: cir.GroupParent{Group: g}},
	}
	g.Assignments = assignments
	return g
}

// MustPort returns the named port of a source cell, failing loudly when the
// fixture is miswired.
func MustPort(c *cir.Cell, name string) *cir.Port {
	p, ok := c.FindPort(ir.NewId(name))
	if !ok {
		panic("testutil: cell " + string(c.Name) + " has no port " + name)
	}
	return p
}

// Hole returns the named hole of a source group.
func Hole(g *cir.Group, name string) *cir.Port {
	p, ok := g.FindHole(ir.NewId(name))
	if !ok {
		panic("testutil: group " + string(g.Name) + " has no hole " + name)
	}
	return p
}

// Assign creates an unconditional assignment.
func Assign(dst, src *cir.Port) cir.Assignment[ir.Nothing] {
	return cir.Assignment[ir.Nothing]{Dst: dst, Src: src, Guard: cir.TrueGuard[ir.Nothing]{}}
}

// Signature creates a this-component boundary cell with the given ports.
func Signature(name string, ports ...PortDef) *cir.Cell {
	return Cell(name, ir.ThisComponentPrototype{}, ports...)
}

// TwoCellComponent builds the canonical small fixture: a register fed by a
// constant inside one group, enabled by the control program.
//
//	cells:  reg = std_reg(WIDTH=32), const5 = constant(5, 32)
//	group g: reg.in = const5.out; g.done = reg.done
//	control: enable g
func TwoCellComponent() *cir.Component {
	reg := Register("reg", 32)
	const5 := Constant("const5", 5, 32)

	g := Group("g",
		Assign(MustPort(reg, "in"), MustPort(const5, "out")),
	)
	g.Assignments = append(g.Assignments,
		Assign(Hole(g, "done"), MustPort(reg, "done")),
	)

	return &cir.Component{
		Name:      "main",
		Signature: Signature("main", PortDef{Name: "go", Width: 1, Dir: ir.In}, PortDef{Name: "done", Width: 1, Dir: ir.Out}),
		Cells:     []*cir.Cell{reg, const5},
		Groups:    []*cir.Group{g},
		Control:   &cir.Enable{Group: g},
	}
}
