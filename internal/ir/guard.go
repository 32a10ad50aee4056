package ir

import "fmt"

// Nothing is the unit payload for assignments and guards that carry no
// pass-specific annotation.
type Nothing struct{}

// PortComp is a comparison operator applied to two ports' carried values.
type PortComp int

const (
	Eq PortComp = iota
	Neq
	Gt
	Lt
	Geq
	Leq
)

func (op PortComp) String() string {
	switch op {
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Geq:
		return ">="
	case Leq:
		return "<="
	default:
		return fmt.Sprintf("PortComp(%d)", int(op))
	}
}

// Guard is a boolean expression tree gating an assignment's activity. Guards
// reference ports but never own them, and are immutable once built: rewriting
// passes reconstruct new trees instead of mutating in place.
//
// The payload type T is a closed, pass-specific extension point surfaced
// through InfoGuard; component-level wiring uses Nothing.
type Guard[T any] interface {
	isGuard(T)
}

// OrGuard is the disjunction of two guards.
type OrGuard[T any] struct {
	Left  Guard[T]
	Right Guard[T]
}

// AndGuard is the conjunction of two guards.
type AndGuard[T any] struct {
	Left  Guard[T]
	Right Guard[T]
}

// NotGuard negates its operand.
type NotGuard[T any] struct {
	Inner Guard[T]
}

// TrueGuard is the constant true.
type TrueGuard[T any] struct{}

// CompOpGuard compares the values carried by two ports.
type CompOpGuard[T any] struct {
	Op    PortComp
	Left  *Port
	Right *Port
}

// PortGuard uses the truthiness of a single port's value.
type PortGuard[T any] struct {
	Port *Port
}

// InfoGuard carries an opaque pass-specific payload.
type InfoGuard[T any] struct {
	Info T
}

func (OrGuard[T]) isGuard(T)     {}
func (AndGuard[T]) isGuard(T)    {}
func (NotGuard[T]) isGuard(T)    {}
func (TrueGuard[T]) isGuard(T)   {}
func (CompOpGuard[T]) isGuard(T) {}
func (PortGuard[T]) isGuard(T)   {}
func (InfoGuard[T]) isGuard(T)   {}

// GuardString renders a guard for diagnostics and the printer.
func GuardString[T any](g Guard[T]) string {
	switch g := g.(type) {
	case OrGuard[T]:
		return "(" + GuardString(g.Left) + " | " + GuardString(g.Right) + ")"
	case AndGuard[T]:
		return "(" + GuardString(g.Left) + " & " + GuardString(g.Right) + ")"
	case NotGuard[T]:
		return "!" + GuardString(g.Inner)
	case TrueGuard[T]:
		return "1"
	case CompOpGuard[T]:
		return g.Left.CanonicalName() + " " + g.Op.String() + " " + g.Right.CanonicalName()
	case PortGuard[T]:
		return g.Port.CanonicalName()
	case InfoGuard[T]:
		return fmt.Sprintf("info(%v)", g.Info)
	default:
		return fmt.Sprintf("guard(%T)", g)
	}
}
