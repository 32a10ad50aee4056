package translator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EclecticGriffin/cider-parallel-test/internal/cir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/testutil"
	"github.com/EclecticGriffin/cider-parallel-test/internal/translator"
)

func TestIdentityPreservation(t *testing.T) {
	src := testutil.TwoCellComponent()
	comp, err := translator.Translate(src)
	require.NoError(t, err)

	reg, ok := comp.FindCell("reg")
	require.True(t, ok)
	group, ok := comp.FindGroup("g")
	require.True(t, ok)

	// The port written by the group's first assignment is the very same
	// handle owned by the cell, not a copy.
	asgns := group.Assignments()
	require.Len(t, asgns, 2)
	assert.Same(t, reg.Port("in"), asgns[0].Dst)

	// The done-hole alias assignment reads the cell's done port and writes
	// the group's own hole.
	assert.Same(t, group.Hole(ir.DoneHole), asgns[1].Dst)
	assert.Same(t, reg.Port("done"), asgns[1].Src)

	// The group enabled by control is the one in the component collection.
	enable, ok := comp.Control().(*ir.Enable)
	require.True(t, ok)
	assert.Same(t, group, enable.Group)
}

func TestIdempotence(t *testing.T) {
	src := testutil.TwoCellComponent()
	tm := translator.New()

	first, err := tm.Cell(src.Cells[0])
	require.NoError(t, err)
	second, err := tm.Cell(src.Cells[0])
	require.NoError(t, err)
	assert.Same(t, first, second)

	srcPort := testutil.MustPort(src.Cells[0], "in")
	p1, err := tm.Port(srcPort)
	require.NoError(t, err)
	p2, err := tm.Port(srcPort)
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	g1, err := tm.Group(src.Groups[0])
	require.NoError(t, err)
	g2, err := tm.Group(src.Groups[0])
	require.NoError(t, err)
	assert.Same(t, g1, g2)
}

func TestCycleSafety(t *testing.T) {
	// Translating a port first forces the translator through the mutual
	// Port <-> parent dependency: the parent cell is built mid-flight and
	// itself translates every one of its ports, including this one.
	src := testutil.Register("reg", 32)
	srcIn := testutil.MustPort(src, "in")

	tm := translator.New()
	in, err := tm.Port(srcIn)
	require.NoError(t, err)

	cell, err := tm.Cell(src)
	require.NoError(t, err)

	parent, ok := in.Parent().(ir.CellParent)
	require.True(t, ok)
	assert.Same(t, cell, parent.Cell(), "port's parent resolves back to the cell")

	found := false
	for _, p := range cell.Ports() {
		if p == in {
			found = true
		}
	}
	assert.True(t, found, "cell's port list contains the same port handle")
	assert.Len(t, cell.Ports(), 4, "no port was constructed twice")
}

func TestSessionsAreIndependent(t *testing.T) {
	src := testutil.TwoCellComponent()

	first, err := translator.Translate(src)
	require.NoError(t, err)
	second, err := translator.Translate(src)
	require.NoError(t, err)

	a, ok := first.FindCell("reg")
	require.True(t, ok)
	b, ok := second.FindCell("reg")
	require.True(t, ok)
	assert.NotSame(t, a, b, "the table is per-session, not content-addressed")

	assert.NotEqual(t, translator.New().Session(), translator.New().Session())
}

func TestGroupHolesTranslate(t *testing.T) {
	src := testutil.TwoCellComponent()
	comp, err := translator.Translate(src)
	require.NoError(t, err)

	group, ok := comp.FindGroup("g")
	require.True(t, ok)

	done := group.Hole(ir.DoneHole)
	parent, ok := done.Parent().(ir.GroupParent)
	require.True(t, ok)
	assert.Same(t, group, parent.Group())
}

func TestStaticControlIsRefused(t *testing.T) {
	sg := &cir.StaticGroup{Name: "fast", Latency: 2}
	src := testutil.TwoCellComponent()
	src.Control = &cir.StaticEnable{Group: sg}

	_, err := translator.Translate(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ir.ErrUnsupported)
	assert.Contains(t, err.Error(), "fast")
}

func TestRepeatControlIsRefused(t *testing.T) {
	src := testutil.TwoCellComponent()
	src.Control = &cir.Repeat{Body: &cir.Empty{}, Count: 4}

	_, err := translator.Translate(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ir.ErrUnsupported)
}

func TestStaticGroupPortIsRefused(t *testing.T) {
	sg := &cir.StaticGroup{Name: "fast", Latency: 2}
	hole := &cir.Port{Name: "go", Width: 1, Direction: ir.In, Parent: cir.StaticGroupParent{Group: sg}}

	tm := translator.New()
	_, err := tm.Port(hole)
	require.Error(t, err)
	assert.ErrorIs(t, err, ir.ErrUnsupported)
	assert.Contains(t, err.Error(), "fast")
}

func TestDuplicateInvokeBindingIsRefused(t *testing.T) {
	callee := testutil.Cell("adder", ir.ComponentPrototype{Name: "adder"},
		testutil.PortDef{Name: "left", Width: 32, Dir: ir.In},
		testutil.PortDef{Name: "out", Width: 32, Dir: ir.Out},
	)
	reg := testutil.Register("reg", 32)

	src := &cir.Component{
		Name:      "main",
		Signature: testutil.Signature("main"),
		Cells:     []*cir.Cell{callee, reg},
		Control: &cir.Invoke{
			Cell: callee,
			Inputs: []cir.PortBinding{
				{Name: "left", Port: testutil.MustPort(reg, "out")},
				{Name: "left", Port: testutil.MustPort(reg, "out")},
			},
		},
	}

	_, err := translator.Translate(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ir.ErrMalformed)
	assert.Contains(t, err.Error(), `"left"`)
}

func TestGuardTranslationSharesPorts(t *testing.T) {
	reg := testutil.Register("reg", 32)
	c5 := testutil.Constant("const5", 5, 32)

	g := testutil.Group("g", cir.Assignment[ir.Nothing]{
		Dst: testutil.MustPort(reg, "in"),
		Src: testutil.MustPort(c5, "out"),
		Guard: cir.AndGuard[ir.Nothing]{
			Left:  cir.NotGuard[ir.Nothing]{Inner: cir.PortGuard[ir.Nothing]{Port: testutil.MustPort(reg, "done")}},
			Right: cir.CompOpGuard[ir.Nothing]{Op: ir.Eq, Left: testutil.MustPort(reg, "out"), Right: testutil.MustPort(c5, "out")},
		},
	})

	src := &cir.Component{
		Name:      "main",
		Signature: testutil.Signature("main"),
		Cells:     []*cir.Cell{reg, c5},
		Groups:    []*cir.Group{g},
		Control:   &cir.Enable{Group: g},
	}

	comp, err := translator.Translate(src)
	require.NoError(t, err)

	regCell, ok := comp.FindCell("reg")
	require.True(t, ok)
	group, ok := comp.FindGroup("g")
	require.True(t, ok)

	guard := group.Assignments()[0].Guard
	and, ok := guard.(ir.AndGuard[ir.Nothing])
	require.True(t, ok)

	not, ok := and.Left.(ir.NotGuard[ir.Nothing])
	require.True(t, ok)
	inner, ok := not.Inner.(ir.PortGuard[ir.Nothing])
	require.True(t, ok)
	assert.Same(t, regCell.Port("done"), inner.Port)

	cmp, ok := and.Right.(ir.CompOpGuard[ir.Nothing])
	require.True(t, ok)
	assert.Same(t, regCell.Port("out"), cmp.Left)
}

func TestIfWhileTranslation(t *testing.T) {
	lt := testutil.Cell("lt", ir.PrimitivePrototype{Name: "std_lt"},
		testutil.PortDef{Name: "left", Width: 32, Dir: ir.In},
		testutil.PortDef{Name: "right", Width: 32, Dir: ir.In},
		testutil.PortDef{Name: "out", Width: 1, Dir: ir.Out},
	)
	reg := testutil.Register("reg", 32)
	c5 := testutil.Constant("const5", 5, 32)

	upd := testutil.Group("upd", testutil.Assign(testutil.MustPort(reg, "in"), testutil.MustPort(c5, "out")))
	cond := &cir.CombGroup{
		Name: "cmp",
		Assignments: []cir.Assignment[ir.Nothing]{
			testutil.Assign(testutil.MustPort(lt, "left"), testutil.MustPort(reg, "out")),
		},
	}

	src := &cir.Component{
		Name:       "main",
		Signature:  testutil.Signature("main"),
		Cells:      []*cir.Cell{lt, reg, c5},
		Groups:     []*cir.Group{upd},
		CombGroups: []*cir.CombGroup{cond},
		Control: &cir.While{
			Port: testutil.MustPort(lt, "out"),
			Cond: cond,
			Body: &cir.If{
				Port:        testutil.MustPort(lt, "out"),
				Cond:        cond,
				TrueBranch:  &cir.Enable{Group: upd},
				FalseBranch: &cir.Empty{},
			},
		},
	}

	comp, err := translator.Translate(src)
	require.NoError(t, err)

	ltCell, ok := comp.FindCell("lt")
	require.True(t, ok)
	condGroup, ok := comp.FindCombGroup("cmp")
	require.True(t, ok)

	while, ok := comp.Control().(*ir.While)
	require.True(t, ok)
	assert.Same(t, ltCell.Port("out"), while.Port)
	assert.Same(t, condGroup, while.Cond, "control and collections share the comb group handle")

	ifNode, ok := while.Body.(*ir.If)
	require.True(t, ok)
	assert.Same(t, while.Port, ifNode.Port, "both control nodes share one port handle")
	assert.Same(t, condGroup, ifNode.Cond)

	_, ok = ifNode.FalseBranch.(*ir.Empty)
	assert.True(t, ok)
}

func TestNilControlBecomesEmpty(t *testing.T) {
	src := &cir.Component{
		Name:      "main",
		Signature: testutil.Signature("main"),
	}
	comp, err := translator.Translate(src)
	require.NoError(t, err)

	_, ok := comp.Control().(*ir.Empty)
	assert.True(t, ok)
}
