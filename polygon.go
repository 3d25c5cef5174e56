package polytri

import "github.com/kestrelgeo/polytri/internal/seidel"

// Polygon is a single closed loop of vertices in order, without repeating
// the first vertex at the end.
type Polygon []Vertex

// PolygonalArea is one or more polygon loops whose union (by even-odd
// parity) defines the area to triangulate. A hole is simply another loop
// nested inside an outer one; orientation (clockwise vs counter-clockwise)
// of individual loops does not matter; the right-edge registry parity test
// determines inside/outside purely from how many loop edges separate a
// point from infinity.
type PolygonalArea struct {
	Loops []Polygon
}

// Validate reports the first InvalidInputError found: a loop with fewer
// than three vertices, a duplicate vertex within a loop, or a
// self-intersection within or across loops.
func (a PolygonalArea) Validate() error {
	if len(a.Loops) == 0 {
		return &InvalidInputError{Reason: "no loops"}
	}

	var segments []seidel.EdgeGeom
	for _, loop := range a.Loops {
		if len(loop) < 3 {
			return &InvalidInputError{Reason: "loop has fewer than three vertices"}
		}
		seen := make(map[[2]float64]bool, len(loop))
		for _, v := range loop {
			key := [2]float64{v.X, v.Y}
			if seen[key] {
				return &InvalidInputError{Reason: "duplicate vertex within a loop"}
			}
			seen[key] = true
		}
		n := len(loop)
		for i := 0; i < n; i++ {
			segments = append(segments, seidel.NewEdgeGeom(loop[i], loop[(i+1)%n]))
		}
	}

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if segmentsShareEndpoint(segments[i], segments[j]) {
				continue
			}
			if seidel.SegmentIntersect(segments[i].Bottom, segments[i].Top, segments[j].Bottom, segments[j].Top) {
				return &InvalidInputError{Reason: "self-intersecting boundary"}
			}
		}
	}

	return nil
}

func segmentsShareEndpoint(a, b seidel.EdgeGeom) bool {
	return a.Bottom.Equal(b.Bottom) || a.Bottom.Equal(b.Top) ||
		a.Top.Equal(b.Bottom) || a.Top.Equal(b.Top)
}

// ContainsPointByEvenOdd reports whether p lies inside the area using the
// classic even-odd ray-crossing test over the raw loops, independent of any
// trapezoidation. It exists both as a cheap standalone containment check
// and as an oracle for validating Triangulate's output in tests.
func (a PolygonalArea) ContainsPointByEvenOdd(p Vertex) bool {
	inside := false
	for _, loop := range a.Loops {
		n := len(loop)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			vi, vj := loop[i], loop[j]
			crosses := (vi.Y > p.Y) != (vj.Y > p.Y)
			if !crosses {
				continue
			}
			xAtP := vj.X + (p.Y-vj.Y)/(vi.Y-vj.Y)*(vi.X-vj.X)
			if p.X < xAtP {
				inside = !inside
			}
		}
	}
	return inside
}
