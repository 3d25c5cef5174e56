package seidel

// rightEdgeRegistry maps each edge to the set of trapezoids currently using
// it as a right boundary. It is the sole mechanism behind the inside/outside
// parity test: flipping across an edge's right side toggles inside-ness.
//
// It lives as a plain field on Decomposition, which each call to
// Trapezoidize creates fresh, so two decompositions never share or
// interfere with each other's registry even run concurrently.
type rightEdgeRegistry struct {
	byEdge map[EdgeID]map[TrapID]struct{}
}

func newRightEdgeRegistry() *rightEdgeRegistry {
	return &rightEdgeRegistry{byEdge: make(map[EdgeID]map[TrapID]struct{})}
}

func (r *rightEdgeRegistry) add(edge EdgeID, trap TrapID) {
	if edge == noEdge {
		return
	}
	set := r.byEdge[edge]
	if set == nil {
		set = make(map[TrapID]struct{})
		r.byEdge[edge] = set
	}
	set[trap] = struct{}{}
}

func (r *rightEdgeRegistry) remove(edge EdgeID, trap TrapID) {
	if edge == noEdge {
		return
	}
	set := r.byEdge[edge]
	if set == nil {
		return
	}
	delete(set, trap)
	if len(set) == 0 {
		delete(r.byEdge, edge)
	}
}

// any returns an arbitrary member of the set of trapezoids whose right edge
// is edge, or false if the set is empty.
func (r *rightEdgeRegistry) any(edge EdgeID) (TrapID, bool) {
	for id := range r.byEdge[edge] {
		return id, true
	}
	return noTrap, false
}
