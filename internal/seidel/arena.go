package seidel

// VertexID, EdgeID, TrapID, and NodeID are stable integer handles into the
// decomposition's arenas. Go's garbage collector tolerates reference cycles
// fine, but the Node<->Trapezoid back-links and the above/below adjacency
// lists are genuinely cyclic graphs that are awkward to reason about and to
// reset between runs when built from raw pointers; indexing by id instead
// (per the design notes) makes every mutation a slice write, makes
// Decomposition trivially disposable between runs, and keeps the right-edge
// registry keyed on a hashable, comparable value.
type VertexID int
type EdgeID int
type TrapID int
type NodeID int

const (
	noVertex VertexID = -1
	noEdge   EdgeID   = -1
	noTrap   TrapID   = -1
	noNode   NodeID   = -1
)

// edgeRecord is the arena-backed representation of an Edge: an oriented pair
// of vertex ids, bottom before top in lexicographic order. Edges are
// reference-identity: two insertions of the same coordinates get distinct
// EdgeIDs and are never considered the same edge.
type edgeRecord struct {
	Bottom, Top VertexID
}

// vertexArena interns vertices so that coincident input vertices across
// different loops collapse to a single VertexID, per spec: two vertices are
// identical iff their (x, y) are equal.
type vertexArena struct {
	verts []Vertex
	index map[[2]float64]VertexID
}

func newVertexArena() *vertexArena {
	return &vertexArena{index: make(map[[2]float64]VertexID)}
}

// Intern returns the VertexID for v, reusing an existing id when the
// coordinates already appear in the arena. The first Tag seen for a given
// coordinate pair wins.
func (a *vertexArena) Intern(v Vertex) VertexID {
	key := [2]float64{v.X, v.Y}
	if id, ok := a.index[key]; ok {
		return id
	}
	id := VertexID(len(a.verts))
	a.verts = append(a.verts, v)
	a.index[key] = id
	return id
}

func (a *vertexArena) Get(id VertexID) Vertex {
	return a.verts[id]
}

type edgeArena struct {
	edges []edgeRecord
}

func newEdgeArena() *edgeArena {
	return &edgeArena{}
}

// New allocates a fresh, reference-distinct edge between two (already
// interned) vertex ids, reordered so Bottom sorts below Top.
func (a *edgeArena) New(v1, v2 VertexID, verts *vertexArena) EdgeID {
	p1, p2 := verts.Get(v1), verts.Get(v2)
	rec := edgeRecord{Bottom: v1, Top: v2}
	if p1.Above(p2) {
		rec = edgeRecord{Bottom: v2, Top: v1}
	}
	id := EdgeID(len(a.edges))
	a.edges = append(a.edges, rec)
	return id
}

func (a *edgeArena) Get(id EdgeID) edgeRecord {
	return a.edges[id]
}
