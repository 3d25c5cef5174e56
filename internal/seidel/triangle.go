package seidel

import "errors"

// ErrBadVertexOrder is returned by NewTriangle when the three vertices are
// not in counter-clockwise order (an exactly collinear triple included), and
// by OrientedTriangle when they are exactly collinear.
var ErrBadVertexOrder = errors.New("seidel: triangle vertices are not counter-clockwise")

// Triangle is an ordered triple of vertices known to be counter-clockwise.
type Triangle struct {
	A, B, C Vertex
}

// NewTriangle constructs a Triangle, requiring (a, b, c) to already be in
// counter-clockwise order. Construct via OrientedTriangle when the winding
// is not yet known.
func NewTriangle(a, b, c Vertex) (Triangle, error) {
	if !CCW(a, b, c) {
		return Triangle{}, ErrBadVertexOrder
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// OrientedTriangle builds a Triangle from three vertices in either winding,
// swapping the last two if necessary to force counter-clockwise order.
// Exactly collinear triples still fail with ErrBadVertexOrder.
func OrientedTriangle(a, b, c Vertex) (Triangle, error) {
	if Collinear(a, b, c) {
		return Triangle{}, ErrBadVertexOrder
	}
	if !CCW(a, b, c) {
		b, c = c, b
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// SignedArea is positive for CCW triangles, negative for CW.
func (t Triangle) SignedArea() float64 {
	return ((t.A.X*t.B.Y - t.B.X*t.A.Y) +
		(t.B.X*t.C.Y - t.C.X*t.B.Y) +
		(t.C.X*t.A.Y - t.A.X*t.C.Y)) / 2
}
