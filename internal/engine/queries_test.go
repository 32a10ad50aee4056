package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EclecticGriffin/cider-parallel-test/internal/cir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/engine"
	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/testutil"
	"github.com/EclecticGriffin/cider-parallel-test/internal/translator"
)

type fakeSignal bool

func (s fakeSignal) High() bool { return bool(s) }

func TestIsSignalHigh(t *testing.T) {
	assert.True(t, engine.IsSignalHigh(fakeSignal(true)))
	assert.False(t, engine.IsSignalHigh(fakeSignal(false)))
}

func TestGoDonePorts(t *testing.T) {
	comp, err := translator.Translate(testutil.TwoCellComponent())
	require.NoError(t, err)

	group, ok := comp.FindGroup("g")
	require.True(t, ok)

	goPort := engine.GoPort(group)
	assert.Equal(t, ir.GoHole, goPort.Name())
	assert.Equal(t, uint64(1), goPort.Width())

	donePort := engine.DonePort(group)
	assert.Equal(t, ir.DoneHole, donePort.Name())
	assert.NotSame(t, goPort, donePort)
}

func TestGoPortPanicsOnHolelessGroup(t *testing.T) {
	bare := ir.NewGroup("bare", nil)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		se, ok := r.(*ir.StructuralError)
		require.True(t, ok)
		assert.Equal(t, ir.ErrCodeMissingHole, se.Code)
		assert.Equal(t, ir.GoHole, se.Entity)
	}()
	engine.GoPort(bare)
}

// destFixture builds two registers, a constant and a this-component boundary
// cell, wired into one assignment list that exercises every DestCells rule:
// duplicate cell writes, a boundary write, and a hole write.
func destFixture(t *testing.T) (regA, regB *ir.Cell, asgns []ir.Assignment[ir.Nothing], done *ir.Port) {
	t.Helper()

	srcA := testutil.Register("regA", 32)
	srcB := testutil.Register("regB", 32)
	c := testutil.Constant("c", 1, 1)
	sig := testutil.Signature("main",
		testutil.PortDef{Name: "go", Width: 1, Dir: ir.In},
		testutil.PortDef{Name: "out", Width: 1, Dir: ir.Out},
	)

	wr := testutil.Group("wr",
		testutil.Assign(testutil.MustPort(srcB, "in"), testutil.MustPort(c, "out")),
		testutil.Assign(testutil.MustPort(srcB, "write_en"), testutil.MustPort(c, "out")),
		testutil.Assign(testutil.MustPort(srcA, "in"), testutil.MustPort(c, "out")),
		testutil.Assign(testutil.MustPort(sig, "out"), testutil.MustPort(c, "out")),
	)
	wr.Assignments = append(wr.Assignments,
		testutil.Assign(testutil.Hole(wr, "done"), testutil.MustPort(srcA, "done")),
	)

	src := &cir.Component{
		Name:      "main",
		Signature: sig,
		Cells:     []*cir.Cell{srcA, srcB, c},
		Groups:    []*cir.Group{wr},
		Control:   &cir.Enable{Group: wr},
	}
	comp, err := translator.Translate(src)
	require.NoError(t, err)

	var ok bool
	regA, ok = comp.FindCell("regA")
	require.True(t, ok)
	regB, ok = comp.FindCell("regB")
	require.True(t, ok)
	group, ok := comp.FindGroup("wr")
	require.True(t, ok)

	return regA, regB, group.Assignments(), regA.Port("done")
}

func TestDestCells(t *testing.T) {
	regA, regB, asgns, done := destFixture(t)

	t.Run("without_seed", func(t *testing.T) {
		got := engine.DestCells(asgns, nil)
		// regB is written twice but reported once; the boundary cell and
		// the hole write are skipped entirely.
		require.Len(t, got, 2)
		assert.Same(t, regB, got[0])
		assert.Same(t, regA, got[1])
	})

	t.Run("seeded_by_done_signal", func(t *testing.T) {
		got := engine.DestCells(asgns, done)
		require.Len(t, got, 2)
		assert.Same(t, regA, got[0], "the done signal's cell comes first")
		assert.Same(t, regB, got[1])
	})

	t.Run("empty_assignments", func(t *testing.T) {
		assert.Empty(t, engine.DestCells(nil, nil))

		got := engine.DestCells(nil, done)
		require.Len(t, got, 1)
		assert.Same(t, regA, got[0])
	})
}

func TestControlIsEmpty(t *testing.T) {
	g := ir.NewGroup("g", nil)
	cg := ir.NewCombGroup("cond", nil)
	cell := ir.NewCell("reg", ir.PrimitivePrototype{Name: "std_reg"}, false, nil)

	tests := []struct {
		name string
		node ir.Control
		want bool
	}{
		{"empty_leaf", &ir.Empty{}, true},
		{"empty_seq", &ir.Seq{}, true},
		{"seq_of_empties", &ir.Seq{Stmts: []ir.Control{&ir.Empty{}, &ir.Seq{Stmts: []ir.Control{&ir.Empty{}}}}}, true},
		{"par_of_empties", &ir.Par{Stmts: []ir.Control{&ir.Empty{}, &ir.Empty{}}}, true},
		{"seq_with_enable", &ir.Seq{Stmts: []ir.Control{&ir.Empty{}, &ir.Enable{Group: g}}}, false},
		{"enable", &ir.Enable{Group: g}, false},
		{"if_with_empty_branches", &ir.If{Cond: cg, TrueBranch: &ir.Empty{}, FalseBranch: &ir.Empty{}}, false},
		{"while_with_empty_body", &ir.While{Cond: cg, Body: &ir.Empty{}}, false},
		{"invoke", &ir.Invoke{Cell: cell}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ControlIsEmpty(tt.node))
		})
	}
}

func TestTwoCellComponentQueries(t *testing.T) {
	comp, err := translator.Translate(testutil.TwoCellComponent())
	require.NoError(t, err)

	reg, ok := comp.FindCell("reg")
	require.True(t, ok)
	group, ok := comp.FindGroup("g")
	require.True(t, ok)

	// The group writes reg.in and g.done; only the register counts.
	got := engine.DestCells(group.Assignments(), nil)
	require.Len(t, got, 1)
	assert.Same(t, reg, got[0])

	assert.False(t, engine.ControlIsEmpty(comp.Control()))
}
