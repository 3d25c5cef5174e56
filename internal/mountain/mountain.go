// Package mountain extracts monotone mountains from a trapezoidal
// decomposition's inside trapezoids and triangulates each one.
package mountain

import "github.com/kestrelgeo/polytri/internal/seidel"

// MonotoneVertex is one link of a mountain's zigzag chain, doubly linked via
// Above/Below so ear-clipping can unlink a vertex in place.
type MonotoneVertex struct {
	Vertex seidel.Vertex
	Above  *MonotoneVertex
	Below  *MonotoneVertex
}

// Mountain is a y-monotone polygon with one side being a single straight
// edge (Base) and the other side the zigzag chain starting at Bottom.
// Base.Bottom equals Bottom.Vertex and Base.Top equals the chain's last
// vertex; a degenerate mountain's chain is just those two vertices with
// nothing between them.
type Mountain struct {
	Bottom *MonotoneVertex
	Base   seidel.EdgeGeom
}

// Extract groups every inside trapezoid of d by its non-trivial side edge:
// a trapezoid's left or right edge is a "base" candidate when
// its own endpoints differ from the trapezoid's own (bottom_vertex,
// top_vertex) pair — i.e. it continues past this one trapezoid. Each
// candidate contributes one link, bottom_vertex -> top_vertex, to that
// base's chain; accumulated across every trapezoid sharing the same base,
// this reconstructs the mountain's full zigzag side from the base's bottom
// endpoint to its top.
func Extract(d *seidel.Decomposition) []Mountain {
	type link struct {
		base seidel.EdgeID
		from seidel.Vertex
	}
	nextAbove := make(map[link]seidel.Vertex)

	var baseOrder []seidel.EdgeID
	seenBase := make(map[seidel.EdgeID]bool)

	for _, t := range d.AllLeafTraps() {
		if !d.Inside(t) {
			continue
		}
		b := d.Bounds(t)
		if !b.HasBottom || !b.HasTop {
			fatalf("inside trapezoid has unbounded vertical extent")
		}

		contributed := false
		for _, side := range [2]struct {
			id  seidel.EdgeID
			has bool
		}{{b.LeftEdge, b.HasLeftEdge}, {b.RightEdge, b.HasRightEdge}} {
			if !side.has {
				continue
			}
			edgeBottom, edgeTop := d.EdgeEndpoints(side.id)
			if edgeBottom == b.BottomVertex && edgeTop == b.TopVertex {
				continue // this edge is the trapezoid's own vertical extent, not a base
			}
			nextAbove[link{side.id, b.BottomVertex}] = b.TopVertex
			if !seenBase[side.id] {
				seenBase[side.id] = true
				baseOrder = append(baseOrder, side.id)
			}
			contributed = true
		}
		if !contributed {
			fatalf("inside trapezoid contributed no mountain base")
		}
	}

	mountains := make([]Mountain, 0, len(baseOrder))
	for _, e := range baseOrder {
		bottom, top := d.EdgeEndpoints(e)
		head := &MonotoneVertex{Vertex: bottom}
		cur := head
		curVertex := bottom
		for curVertex != top {
			nxt, ok := nextAbove[link{e, curVertex}]
			if !ok {
				fatalf("mountain base chain ended before reaching its top endpoint")
			}
			node := &MonotoneVertex{Vertex: nxt, Below: cur}
			cur.Above = node
			cur = node
			curVertex = nxt
		}
		mountains = append(mountains, Mountain{Bottom: head, Base: seidel.EdgeGeom{Bottom: bottom, Top: top}})
	}
	return mountains
}
