package engine

import "github.com/EclecticGriffin/cider-parallel-test/internal/ir"

// Signal is the boundary to the external value representation: anything that
// can report single-bit truthiness. Value computation itself lives outside
// this core.
type Signal interface {
	High() bool
}

// GoPort returns a group's go hole. Every well-formed group exposes one, so
// absence panics with a *ir.StructuralError.
func GoPort(g *ir.Group) *ir.Port {
	return g.Hole(ir.GoHole)
}

// DonePort returns a group's done hole, panicking if absent.
func DonePort(g *ir.Group) *ir.Port {
	return g.Hole(ir.DoneHole)
}

// IsSignalHigh reports whether a simulated single-bit value reads true.
func IsSignalHigh(s Signal) bool {
	return s.High()
}

// DestCells returns the cells written by the given assignments, deduplicated
// in first-seen order. Writes to the pseudo this-component cell are skipped
// (the component boundary is not an instantiated cell), as are writes to
// group holes (handshake wiring, not data-cell writes). If doneSig is given
// and its parent is a cell, that cell is seeded first and deduplicated
// against the rest.
//
// The scheduler uses this to determine which cells a parallel set of
// assignments may write, for ordering analysis between active groups.
func DestCells(assignments []ir.Assignment[ir.Nothing], doneSig *ir.Port) []*ir.Cell {
	seen := make(map[*ir.Cell]bool)
	var out []*ir.Cell

	if doneSig != nil {
		if parent, ok := doneSig.Parent().(ir.CellParent); ok {
			cell := parent.Cell()
			seen[cell] = true
			out = append(out, cell)
		}
	}

	for _, a := range assignments {
		parent, ok := a.Dst.Parent().(ir.CellParent)
		if !ok {
			// Hole write.
			continue
		}
		cell := parent.Cell()
		if _, this := cell.Prototype().(ir.ThisComponentPrototype); this {
			continue
		}
		if seen[cell] {
			continue
		}
		seen[cell] = true
		out = append(out, cell)
	}

	return out
}

// ControlIsEmpty reports whether a control subtree is a no-op: the Empty
// leaf, or a Seq or Par whose every child is recursively empty. If, While,
// Invoke and Enable always represent observable effect regardless of their
// contents. This is a property of the schedule shape only; a group whose
// assignment list happens to be empty is a different, unrelated condition.
func ControlIsEmpty(node ir.Control) bool {
	switch node := node.(type) {
	case *ir.Seq:
		for _, s := range node.Stmts {
			if !ControlIsEmpty(s) {
				return false
			}
		}
		return true
	case *ir.Par:
		for _, s := range node.Stmts {
			if !ControlIsEmpty(s) {
				return false
			}
		}
		return true
	case *ir.Empty:
		return true
	default:
		return false
	}
}
