package polytri

import (
	"github.com/kestrelgeo/polytri/internal/mountain"
	"github.com/kestrelgeo/polytri/internal/seidel"
	"github.com/pkg/errors"
)

// InvalidInputError reports a problem with a PolygonalArea discovered by
// pre-validation, before the engine ever runs: a self-intersecting loop, a
// duplicate vertex within one loop, or a loop with fewer than three
// vertices.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return errors.Errorf("polytri: invalid input: %s", e.Reason).Error()
}

// BadVertexOrder is the error seidel's Triangle constructors (NewTriangle,
// OrientedTriangle) return for a triple that is not counter-clockwise.
// Triangulate builds its triangles without those constructors and skips
// exactly-collinear ears, so it does not return this error.
var BadVertexOrder = seidel.ErrBadVertexOrder

// recoverStructural converts a panic raised internally by the trapezoidation
// or mountain-extraction engines back into a normal error. Any other panic
// value is a bug outside the scope of this recovery and is re-raised.
func recoverStructural(r interface{}) error {
	if r == nil {
		return nil
	}
	switch se := r.(type) {
	case *seidel.StructuralError:
		return errors.Wrap(se, "polytri: structural inconsistency")
	case *mountain.StructuralError:
		return errors.Wrap(se, "polytri: structural inconsistency")
	default:
		panic(r)
	}
}
