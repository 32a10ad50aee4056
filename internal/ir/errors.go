package ir

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks source constructs the concurrent graph does not model
// (static groups, statically scheduled control). Translation refuses partial
// output rather than silently dropping semantics.
var ErrUnsupported = errors.New("unsupported construct")

// ErrMalformed marks source graphs that violate a construction precondition,
// such as duplicate names inside one Invoke's bindings.
var ErrMalformed = errors.New("malformed graph")

// StructuralErrorCode categorizes structural failures.
type StructuralErrorCode string

const (
	// ErrCodeMissingPort indicates a named port was absent where upstream
	// construction guarantees its presence.
	ErrCodeMissingPort StructuralErrorCode = "MISSING_PORT"

	// ErrCodeMissingHole indicates a group is missing a well-known hole.
	ErrCodeMissingHole StructuralErrorCode = "MISSING_HOLE"

	// ErrCodeDeadParent indicates a port's weak parent reference could not
	// be upgraded: the owner was destroyed while referents remained.
	ErrCodeDeadParent StructuralErrorCode = "DEAD_PARENT"

	// ErrCodeDuplicateName indicates two entities with the same name were
	// inserted into a name-unique collection.
	ErrCodeDuplicateName StructuralErrorCode = "DUPLICATE_NAME"
)

// StructuralError reports a malformed graph. These conditions invalidate all
// further reasoning about the program, so lookups that are structurally
// guaranteed to succeed panic with a *StructuralError instead of returning an
// error value.
type StructuralError struct {
	// Code identifies the failure category.
	Code StructuralErrorCode

	// Entity names the missing or offending element.
	Entity Id

	// Container names the cell, group or component involved.
	Container Id

	// Op names the operation that detected the failure.
	Op string
}

func (e *StructuralError) Error() string {
	if e.Container != "" {
		return fmt.Sprintf("%s: %s: no element %q in %q", e.Code, e.Op, e.Entity, e.Container)
	}
	return fmt.Sprintf("%s: %s: %q", e.Code, e.Op, e.Entity)
}

// IsStructuralError reports whether err is (or wraps) a StructuralError.
func IsStructuralError(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// AmbiguousAttributeError reports that more than one port carried an
// attribute queried through UniquePortWithAttribute. This is the one
// structural malformation callers may recover from, e.g. by emitting a
// compile-time diagnostic.
type AmbiguousAttributeError struct {
	Cell      Id
	Attribute Id
	Count     int
}

func (e *AmbiguousAttributeError) Error() string {
	return fmt.Sprintf("cell %q has %d ports with attribute %q, expected at most one", e.Cell, e.Count, e.Attribute)
}

// IsAmbiguousAttribute reports whether err is (or wraps) an
// AmbiguousAttributeError.
func IsAmbiguousAttribute(err error) bool {
	var ae *AmbiguousAttributeError
	return errors.As(err, &ae)
}
