package seidel

import "fmt"

// Vertex is an immutable (x, y) coordinate pair. Two vertices with equal
// coordinates are treated as the same identity when deduplicated into a
// Decomposition (see Decomposition.InternVertex); Tag carries a caller-chosen
// label that survives that deduplication for stable hashing of the resulting
// triangles.
type Vertex struct {
	X, Y float64
	Tag  int
}

// Less implements the lexicographic order used throughout the package to
// simulate a coordinate system with no two points sharing a Y value:
// a > b iff a.Y > b.Y, or a.Y == b.Y and a.X > b.X.
func (a Vertex) Less(b Vertex) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Above reports whether a sorts strictly above b in lexicographic order.
func (a Vertex) Above(b Vertex) bool {
	return b.Less(a)
}

// Below reports whether a sorts strictly below b in lexicographic order.
func (a Vertex) Below(b Vertex) bool {
	return a.Less(b)
}

// Equal compares coordinates only, ignoring Tag.
func (a Vertex) Equal(b Vertex) bool {
	return a.X == b.X && a.Y == b.Y
}

func (a Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}
