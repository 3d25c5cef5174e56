package seidel

import "math"

// EdgeGeom is a value-type snapshot of an edge's endpoints, already ordered
// bottom-before-top by lexicographic order. It carries no identity: unlike
// EdgeID, two EdgeGeom values with equal endpoints compare equal. Predicates
// are defined on this type because they need only coordinates, never arena
// identity.
type EdgeGeom struct {
	Bottom, Top Vertex
}

func NewEdgeGeom(a, b Vertex) EdgeGeom {
	if a.Above(b) {
		a, b = b, a
	}
	return EdgeGeom{Bottom: a, Top: b}
}

// IsHorizontal reports whether the edge's endpoints share a Y value.
func (e EdgeGeom) IsHorizontal() bool {
	return e.Bottom.Y == e.Top.Y
}

// XAt returns the edge's X coordinate at the given Y. For a horizontal edge
// it returns the midpoint's X, since every Y on a horizontal edge is the
// same. y outside [Bottom.Y, Top.Y] is clamped rather than extrapolated;
// the walk never calls this out of range, but external callers (e.g. debug
// rendering) may.
func (e EdgeGeom) XAt(y float64) float64 {
	if e.IsHorizontal() {
		return (e.Bottom.X + e.Top.X) / 2
	}
	if y <= e.Bottom.Y {
		return e.Bottom.X
	}
	if y >= e.Top.Y {
		return e.Top.X
	}
	t := (y - e.Bottom.Y) / (e.Top.Y - e.Bottom.Y)
	return e.Bottom.X + t*(e.Top.X-e.Bottom.X)
}

// PointRightOf reports whether v lies strictly to the right of the edge at
// v's Y coordinate.
func (e EdgeGeom) PointRightOf(v Vertex) bool {
	return v.X > e.XAt(v.Y)
}

// Midpoint returns the arithmetic midpoint of the edge's endpoints, used to
// locate the trapezoid an edge insertion starts from.
func (e EdgeGeom) Midpoint() Vertex {
	return Vertex{X: (e.Bottom.X + e.Top.X) / 2, Y: (e.Bottom.Y + e.Top.Y) / 2}
}

// CCW reports the orientation of the ordered triple (a, b, c): true if
// counter-clockwise, false if clockwise or collinear. Ties are broken purely
// by the sign of the cross product; degenerate (exactly collinear) triples
// return false.
func CCW(a, b, c Vertex) bool {
	return crossProduct(a, b, c) > 0
}

// Collinear reports whether the cross product of (a,b,c) is exactly zero.
func Collinear(a, b, c Vertex) bool {
	return crossProduct(a, b, c) == 0
}

func crossProduct(a, b, c Vertex) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SegmentIntersect reports whether open segments (a1,a2) and (b1,b2) cross at
// a point interior to both (shared endpoints do not count as crossing). Used
// only by input validation (InvalidInput: self-intersecting polygon), never
// by the trapezoidation engine itself.
func SegmentIntersect(a1, a2, b1, b2 Vertex) bool {
	d1 := crossProduct(b1, b2, a1)
	d2 := crossProduct(b1, b2, a2)
	d3 := crossProduct(a1, a2, b1)
	d4 := crossProduct(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

// Angle returns the unsigned angle in degrees at vertex b formed by rays
// b->a and b->c, in [0, 180].
func Angle(a, b, c Vertex) float64 {
	v1x, v1y := a.X-b.X, a.Y-b.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y
	dot := v1x*v2x + v1y*v2y
	mag1 := math.Hypot(v1x, v1y)
	mag2 := math.Hypot(v2x, v2y)
	if mag1 == 0 || mag2 == 0 {
		return 0
	}
	cosTheta := dot / (mag1 * mag2)
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Acos(cosTheta) * 180 / math.Pi
}
