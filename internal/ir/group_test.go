package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroup(name Id) *Group {
	g := NewGroup(name, nil)
	g.AddHole(NewPort(GoHole, 1, In, NewGroupParent(g), nil))
	g.AddHole(NewPort(DoneHole, 1, Out, NewGroupParent(g), nil))
	return g
}

func TestGroupHoleLookup(t *testing.T) {
	g := newTestGroup("upd")

	goHole, ok := g.FindHole(GoHole)
	require.True(t, ok)
	assert.Equal(t, GoHole, goHole.Name())

	doneHole := g.Hole(DoneHole)
	assert.Equal(t, DoneHole, doneHole.Name())

	_, ok = g.FindHole("ready")
	assert.False(t, ok)
}

func TestGroupHolePanicsWhenAbsent(t *testing.T) {
	g := NewGroup("bare", nil)
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic for missing hole")
		se, ok := r.(*StructuralError)
		require.True(t, ok, "panic value should be *StructuralError, got %T", r)
		assert.Equal(t, ErrCodeMissingHole, se.Code)
		assert.Equal(t, DoneHole, se.Entity)
		assert.Equal(t, Id("bare"), se.Container)
	}()
	g.Hole(DoneHole)
}

func TestGroupAssignmentsAreCopies(t *testing.T) {
	reg := NewCell("reg", PrimitivePrototype{Name: "std_reg"}, false, nil)
	in := cellPort(reg, "in", 32, In, nil)
	out := cellPort(reg, "out", 32, Out, nil)

	g := newTestGroup("upd")
	g.SetAssignments([]Assignment[Nothing]{
		{Dst: in, Src: out, Guard: TrueGuard[Nothing]{}},
	})

	got := g.Assignments()
	require.Len(t, got, 1)
	got[0].Dst = out
	assert.Same(t, in, g.Assignments()[0].Dst, "mutating the returned copy must not touch the group")
}

func TestCombGroupHasNoHoles(t *testing.T) {
	lt := NewCell("lt", PrimitivePrototype{Name: "std_lt"}, false, nil)
	left := cellPort(lt, "left", 32, In, nil)
	out := cellPort(lt, "out", 1, Out, nil)

	cg := NewCombGroup("cond", nil)
	cg.SetAssignments([]Assignment[Nothing]{
		{Dst: left, Src: out, Guard: TrueGuard[Nothing]{}},
	})

	assert.Equal(t, Id("cond"), cg.Name())
	assert.Len(t, cg.Assignments(), 1)
}
