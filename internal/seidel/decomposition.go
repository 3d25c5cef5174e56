package seidel

import "math"

// Decomposition holds every arena for one trapezoidation run: vertices,
// edges, trapezoids, search-DAG nodes, and the right-edge registry. Nothing
// here is package-level state, so two Decompositions never interfere with
// each other even if built concurrently.
type Decomposition struct {
	verts    *vertexArena
	edges    *edgeArena
	traps    *trapArena
	nodes    *nodeArena
	registry *rightEdgeRegistry

	Root NodeID

	// Trace, if set, is called once after each vertex insertion and once
	// after each edge insertion (split, rewire and merge together). It
	// exists purely for debugging; nil by default.
	Trace func(format string, args ...interface{})
}

func NewDecomposition() *Decomposition {
	d := &Decomposition{
		verts:    newVertexArena(),
		edges:    newEdgeArena(),
		traps:    newTrapArena(),
		nodes:    newNodeArena(),
		registry: newRightEdgeRegistry(),
	}
	root := d.traps.alloc(emptyTrapRecord())
	leaf := d.nodes.alloc(leafNode(root))
	rec := d.traps.get(root)
	rec.Node = leaf
	d.traps.set(root, rec)
	d.Root = leaf
	return d
}

func (d *Decomposition) trace(format string, args ...interface{}) {
	if d.Trace != nil {
		d.Trace(format, args...)
	}
}

// InternVertex returns the VertexID for v, collapsing coincident input
// vertices (same x, y, possibly from different loops) to one identity.
func (d *Decomposition) InternVertex(v Vertex) VertexID {
	return d.verts.Intern(v)
}

// NewEdge allocates a fresh, reference-distinct edge between two vertex ids.
func (d *Decomposition) NewEdge(v1, v2 VertexID) EdgeID {
	return d.edges.New(v1, v2, d.verts)
}

func (d *Decomposition) vertexY(v VertexID) float64 {
	if v == noVertex {
		fatalf("vertex lookup on absent boundary vertex")
	}
	return d.verts.Get(v).Y
}

func (d *Decomposition) edgeGeom(e EdgeID) EdgeGeom {
	rec := d.edges.Get(e)
	return EdgeGeom{Bottom: d.verts.Get(rec.Bottom), Top: d.verts.Get(rec.Top)}
}

// cornerX returns the x coordinate of trapezoid t's left or right edge at
// t's own top or bottom vertex (an "extreme point" for the walk's branch
// rule), or the appropriate infinity when that side is unbounded.
func (d *Decomposition) cornerX(t TrapID, right bool, top bool) float64 {
	rec := d.traps.get(t)
	edgeID := rec.LeftEdge
	if right {
		edgeID = rec.RightEdge
	}
	if edgeID == noEdge {
		if right {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	var y float64
	if top {
		y = d.vertexY(rec.TopVertex)
	} else {
		y = d.vertexY(rec.BottomVertex)
	}
	return d.edgeGeom(edgeID).XAt(y)
}

// allocTrap allocates a new trapezoid with no DAG leaf yet, registering it
// under the right-edge registry if it has a right edge.
func (d *Decomposition) allocTrap(rec trapRecord) TrapID {
	rec.Node = noNode
	id := d.traps.alloc(rec)
	if rec.RightEdge != noEdge {
		d.registry.add(rec.RightEdge, id)
	}
	return id
}

// setRightEdge is the only way right_edge should ever be assigned after a
// trapezoid is allocated: it keeps the registry invariant in lockstep with
// the field.
func (d *Decomposition) setRightEdge(t TrapID, newEdge EdgeID) {
	rec := d.traps.get(t)
	if rec.RightEdge == newEdge {
		return
	}
	d.registry.remove(rec.RightEdge, t)
	rec.RightEdge = newEdge
	d.registry.add(newEdge, t)
	d.traps.set(t, rec)
}

// newLeafFor allocates a DAG leaf for an existing trapezoid and backlinks it.
func (d *Decomposition) newLeafFor(t TrapID) NodeID {
	id := d.nodes.alloc(leafNode(t))
	rec := d.traps.get(t)
	rec.Node = id
	d.traps.set(t, rec)
	return id
}

func firstNonEmpty(nl neighborList) TrapID {
	if nl[0] != noTrap {
		return nl[0]
	}
	return nl[1]
}

// locate walks the search DAG from root to the leaf whose trapezoid contains
// query.
func (d *Decomposition) locate(query Vertex) NodeID {
	id := d.Root
	for {
		rec := d.nodes.get(id)
		switch rec.Kind {
		case kindLeaf:
			return id
		case kindVertexSplit:
			nodeVertex := d.verts.Get(rec.Vertex)
			if query.Above(nodeVertex) || query.Equal(nodeVertex) {
				id = rec.Right
			} else {
				id = rec.Left
			}
		case kindEdgeSplit:
			if d.edgeGeom(rec.Edge).PointRightOf(query) {
				id = rec.Right
			} else {
				id = rec.Left
			}
		default:
			fatalf("locate: unrecognized node kind %d", rec.Kind)
		}
	}
}

// LocateTrapezoid is the public point-location query: it returns the
// trapezoid containing query. Behavior is undefined for points exactly on a
// trapezoid boundary.
func (d *Decomposition) LocateTrapezoid(query Vertex) TrapID {
	return d.nodes.asLeaf(d.locate(query))
}

// replaceLeaf redirects every parent of old to point at new instead,
// merging old's parent list into new's. This is the only operation that can
// leave a node with multiple parents.
func (d *Decomposition) replaceLeaf(old, new NodeID) {
	if old == new {
		return
	}
	oldRec := d.nodes.get(old)
	for _, parent := range oldRec.Parents {
		prec := d.nodes.get(parent)
		if prec.Left == old {
			prec.Left = new
		}
		if prec.Right == old {
			prec.Right = new
		}
		d.nodes.set(parent, prec)
	}
	newRec := d.nodes.get(new)
	seen := make(map[NodeID]bool, len(newRec.Parents))
	for _, p := range newRec.Parents {
		seen[p] = true
	}
	for _, p := range oldRec.Parents {
		if !seen[p] {
			newRec.Parents = append(newRec.Parents, p)
			seen[p] = true
		}
	}
	d.nodes.set(new, newRec)
	if d.Root == old {
		d.Root = new
	}
}
