package ir

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a deterministic, human-readable rendering of the component.
// Cells, groups and control are emitted in insertion order, so two renderings
// of the same component are byte-identical. The output is a debugging surface,
// not a persistence format.
func Print(w io.Writer, c *Component) error {
	p := &printer{w: w}
	p.printf("component %s {\n", c.Name())

	cells := c.Cells()
	if len(cells) > 0 {
		p.printf("  cells {\n")
		for _, cell := range cells {
			p.printf("    %s = %s;\n", cell.Name(), PrototypeString(cell.Prototype()))
		}
		p.printf("  }\n")
	}

	groups := c.Groups()
	if len(groups) > 0 {
		p.printf("  groups {\n")
		for _, g := range groups {
			p.printf("    group %s {\n", g.Name())
			for _, a := range g.Assignments() {
				p.printf("      %s;\n", a.String())
			}
			p.printf("    }\n")
		}
		p.printf("  }\n")
	}

	combGroups := c.CombGroups()
	if len(combGroups) > 0 {
		p.printf("  comb groups {\n")
		for _, g := range combGroups {
			p.printf("    comb group %s {\n", g.Name())
			for _, a := range g.Assignments() {
				p.printf("      %s;\n", a.String())
			}
			p.printf("    }\n")
		}
		p.printf("  }\n")
	}

	if cont := c.ContinuousAssignments(); len(cont) > 0 {
		p.printf("  continuous {\n")
		for _, a := range cont {
			p.printf("    %s;\n", a.String())
		}
		p.printf("  }\n")
	}

	p.printf("  control {\n")
	p.control(c.Control(), 2)
	p.printf("  }\n")
	p.printf("}\n")
	return p.err
}

// PrintString renders the component into a string, ignoring writer errors.
func PrintString(c *Component) string {
	var b strings.Builder
	_ = Print(&b, c)
	return b.String()
}

// PrototypeString renders a cell prototype for diagnostics and printing.
func PrototypeString(proto CellPrototype) string {
	switch proto := proto.(type) {
	case PrimitivePrototype:
		if len(proto.Bindings) == 0 {
			return fmt.Sprintf("primitive %s", proto.Name)
		}
		parts := make([]string, len(proto.Bindings))
		for i, b := range proto.Bindings {
			parts[i] = fmt.Sprintf("%s=%d", b.Name, b.Value)
		}
		return fmt.Sprintf("primitive %s(%s)", proto.Name, strings.Join(parts, ", "))
	case ComponentPrototype:
		return fmt.Sprintf("component %s", proto.Name)
	case ConstantPrototype:
		return fmt.Sprintf("constant(%d, %d)", proto.Val, proto.Width)
	case ThisComponentPrototype:
		return "this"
	default:
		return fmt.Sprintf("prototype(%T)", proto)
	}
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) control(node Control, depth int) {
	ind := strings.Repeat("  ", depth)
	switch node := node.(type) {
	case *Seq:
		p.printf("%sseq {\n", ind)
		for _, s := range node.Stmts {
			p.control(s, depth+1)
		}
		p.printf("%s}\n", ind)
	case *Par:
		p.printf("%spar {\n", ind)
		for _, s := range node.Stmts {
			p.control(s, depth+1)
		}
		p.printf("%s}\n", ind)
	case *If:
		p.printf("%sif %s%s {\n", ind, node.Port.CanonicalName(), withCond(node.Cond))
		p.control(node.TrueBranch, depth+1)
		p.printf("%s} else {\n", ind)
		p.control(node.FalseBranch, depth+1)
		p.printf("%s}\n", ind)
	case *While:
		p.printf("%swhile %s%s {\n", ind, node.Port.CanonicalName(), withCond(node.Cond))
		p.control(node.Body, depth+1)
		p.printf("%s}\n", ind)
	case *Invoke:
		p.printf("%sinvoke %s(%s)(%s)%s;\n",
			ind,
			node.Cell.Name(),
			bindingString(node.Inputs),
			bindingString(node.Outputs),
			withCond(node.CombGroup),
		)
	case *Enable:
		p.printf("%senable %s;\n", ind, node.Group.Name())
	case *Empty:
		p.printf("%sempty;\n", ind)
	default:
		p.printf("%scontrol(%T);\n", ind, node)
	}
}

func withCond(cg *CombGroup) string {
	if cg == nil {
		return ""
	}
	return " with " + string(cg.Name())
}

func bindingString(binds []PortBinding) string {
	parts := make([]string, len(binds))
	for i, b := range binds {
		parts[i] = fmt.Sprintf("%s=%s", b.Name, b.Port.CanonicalName())
	}
	return strings.Join(parts, ", ")
}
