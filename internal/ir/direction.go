package ir

import "fmt"

// Direction of a port relative to its owner.
type Direction int

const (
	In Direction = iota
	Out
	Inout
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case Inout:
		return "inout"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a textual direction into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "in":
		return In, nil
	case "out":
		return Out, nil
	case "inout":
		return Inout, nil
	default:
		return 0, fmt.Errorf("invalid port direction %q: must be one of in, out, inout", s)
	}
}

// Reverse flips in and out; inout is its own reverse. Used when viewing a
// component's signature from the outside.
func (d Direction) Reverse() Direction {
	switch d {
	case In:
		return Out
	case Out:
		return In
	default:
		return d
	}
}
