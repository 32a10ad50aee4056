package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortParentResolvesToCell(t *testing.T) {
	c := NewCell("reg", PrimitivePrototype{Name: "std_reg"}, false, nil)
	p := cellPort(c, "in", 32, In, nil)

	parent, ok := p.Parent().(CellParent)
	require.True(t, ok)
	assert.Same(t, c, parent.Cell())
	assert.Equal(t, Id("reg"), parent.ParentName())
	assert.Equal(t, "reg.in", p.CanonicalName())
}

func TestPortParentResolvesToGroup(t *testing.T) {
	g := NewGroup("g", nil)
	done := NewPort(DoneHole, 1, Out, NewGroupParent(g), nil)
	g.AddHole(done)

	parent, ok := done.Parent().(GroupParent)
	require.True(t, ok)
	assert.Same(t, g, parent.Group())
	assert.Equal(t, "g.done", done.CanonicalName())
}

func TestPortAccessors(t *testing.T) {
	c := NewCell("reg", PrimitivePrototype{Name: "std_reg"}, false, nil)
	p := cellPort(c, "write_en", 1, In, Attributes{"control": 1})

	assert.Equal(t, Id("write_en"), p.Name())
	assert.Equal(t, uint64(1), p.Width())
	assert.Equal(t, In, p.Direction())
	assert.True(t, p.HasAttribute("control"))

	v, ok := p.Attribute("control")
	require.True(t, ok)
	assert.Equal(t, uint64(1), v)

	_, ok = p.Attribute("stable")
	assert.False(t, ok)
}

func TestPortAttributesAreCopies(t *testing.T) {
	c := NewCell("reg", PrimitivePrototype{Name: "std_reg"}, false, nil)
	p := cellPort(c, "in", 32, In, Attributes{"data": 1})

	attrs := p.Attributes()
	attrs.Set("extra", 7)
	assert.False(t, p.HasAttribute("extra"), "mutating the returned copy must not touch the port")

	p.SetAttribute("extra", 7)
	assert.True(t, p.HasAttribute("extra"))
}

func TestDirectionRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		dir  Direction
	}{
		{"in", In},
		{"out", Out},
		{"inout", Inout},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := ParseDirection(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.dir, d)
			assert.Equal(t, tt.text, d.String())
		})
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)

	assert.Equal(t, Out, In.Reverse())
	assert.Equal(t, In, Out.Reverse())
	assert.Equal(t, Inout, Inout.Reverse())
}
