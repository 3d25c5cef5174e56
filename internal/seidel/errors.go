package seidel

import "github.com/pkg/errors"

// Threading an error return through every recursive split/walk/merge call
// would bury the algorithm under bookkeeping. Instead, structural
// inconsistencies panic and the public entry point recovers exactly once,
// converting back to a normal error.

// StructuralError wraps a fatal implementation bug: an adjacency-list arity
// mismatch, a node accessed as a leaf that isn't one, a walk that ran out of
// neighbors before reaching its endpoint, or an inside test that finds no
// trapezoid registered under an edge. These are never caused by bad input;
// they indicate one of the engine's own invariants was violated.
type StructuralError struct {
	msg string
}

func (e *StructuralError) Error() string { return e.msg }

// fatalf panics with a StructuralError built from a pkg/errors-formatted
// message. Only the message text is kept; the panic value carries no stack
// trace.
func fatalf(format string, args ...interface{}) {
	panic(&StructuralError{msg: errors.Errorf(format, args...).Error()})
}

// Recover converts a panic raised by fatalf back into an error. Any other
// panic value is re-raised: only StructuralError is a recognized control-flow
// signal here.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if structural, ok := r.(*StructuralError); ok {
		return structural
	}
	panic(r)
}
