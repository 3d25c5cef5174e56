package seidel

// AllLeafTraps returns every trapezoid currently reachable from the search
// DAG's root, in no particular order. Trapezoids retired by a merge (spec
// §4.5) are unreachable and so never appear here, even though their arena
// slot still exists.
func (d *Decomposition) AllLeafTraps() []TrapID {
	seen := make(map[NodeID]bool)
	stack := []NodeID{d.Root}
	var out []TrapID
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		rec := d.nodes.get(id)
		if rec.Kind == kindLeaf {
			out = append(out, rec.Trap)
			continue
		}
		stack = append(stack, rec.Left, rec.Right)
	}
	return out
}

// TrapBounds exposes a trapezoid's four boundaries for consumers outside
// this package (monotone mountain extraction, debug rendering). A boundary
// vertex or side edge that is absent (unbounded trapezoid) reports its
// HasTop/HasBottom/HasLeftEdge/HasRightEdge flag as false.
type TrapBounds struct {
	TopVertex, BottomVertex   Vertex
	HasTop, HasBottom         bool
	LeftEdge, RightEdge       EdgeID
	HasLeftEdge, HasRightEdge bool
}

func (d *Decomposition) Bounds(t TrapID) TrapBounds {
	rec := d.traps.get(t)
	b := TrapBounds{
		LeftEdge:  rec.LeftEdge,
		RightEdge: rec.RightEdge,
	}
	b.HasLeftEdge = rec.LeftEdge != noEdge
	b.HasRightEdge = rec.RightEdge != noEdge
	if rec.TopVertex != noVertex {
		b.TopVertex = d.verts.Get(rec.TopVertex)
		b.HasTop = true
	}
	if rec.BottomVertex != noVertex {
		b.BottomVertex = d.verts.Get(rec.BottomVertex)
		b.HasBottom = true
	}
	return b
}

// EdgeEndpoints returns the bottom and top vertices of an edge.
func (d *Decomposition) EdgeEndpoints(e EdgeID) (bottom, top Vertex) {
	rec := d.edges.Get(e)
	return d.verts.Get(rec.Bottom), d.verts.Get(rec.Top)
}
