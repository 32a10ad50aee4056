package ir

// Assignment is a directed connection from a source port to a destination
// port, active only while its guard evaluates true. Assignments are immutable
// once built by the translator.
type Assignment[T any] struct {
	// Dst is the written port.
	Dst *Port

	// Src is the read port.
	Src *Port

	// Guard gates the connection. Never nil; an unconditional assignment
	// carries TrueGuard.
	Guard Guard[T]

	// Attributes annotate the assignment.
	Attributes Attributes
}

// String renders the assignment in source-like form for diagnostics.
func (a Assignment[T]) String() string {
	s := a.Dst.CanonicalName() + " = " + a.Src.CanonicalName()
	if _, always := a.Guard.(TrueGuard[T]); !always {
		s += " when " + GuardString(a.Guard)
	}
	return s
}
