package mountain

import "github.com/pkg/errors"

// StructuralError mirrors seidel.StructuralError for this package's own
// invariants (every inside trapezoid contributes a base, a base's chain
// reaches its declared top endpoint). Kept as a distinct type so the public
// entry point's recover can report which stage failed.
type StructuralError struct {
	msg string
}

func (e *StructuralError) Error() string { return e.msg }

func fatalf(format string, args ...interface{}) {
	panic(&StructuralError{msg: errors.Errorf(format, args...).Error()})
}
