package seidel

// splitByVertex splits a trapezoid at a vertex: t is reused as the top
// trapezoid, a fresh trapezoid becomes the bottom one, and every former
// below-neighbor of t is repointed at bottom.
func (d *Decomposition) splitByVertex(t TrapID, v VertexID) (bottom, top TrapID) {
	orig := d.traps.get(t)

	bottomRec := trapRecord{
		TopVertex:    v,
		BottomVertex: orig.BottomVertex,
		LeftEdge:     orig.LeftEdge,
		RightEdge:    orig.RightEdge,
		Above:        neighborList{noTrap, noTrap},
		Below:        orig.Below,
		Node:         noNode,
	}
	bottom = d.allocTrap(bottomRec)

	for _, x := range orig.Below {
		if x == noTrap {
			continue
		}
		xrec := d.traps.get(x)
		xrec.Above.replace(t, bottom)
		d.traps.set(x, xrec)
	}

	orig.BottomVertex = v
	orig.Below = neighborList{bottom, noTrap}
	d.traps.set(t, orig)

	brec := d.traps.get(bottom)
	brec.Above = neighborList{t, noTrap}
	d.traps.set(bottom, brec)

	return bottom, t
}

// insertVertex locates the trapezoid containing v, splits it, and transmutes
// the DAG leaf it came from into a vertex-split node in place — every
// existing parent of that leaf automatically sees the new children without
// any relinking.
func (d *Decomposition) insertVertex(v VertexID) {
	vtx := d.verts.Get(v)
	leaf := d.locate(vtx)
	t := d.nodes.asLeaf(leaf)

	bottomTrap, topTrap := d.splitByVertex(t, v)
	bottomLeaf := d.newLeafFor(bottomTrap)
	topLeaf := d.newLeafFor(topTrap)

	d.nodes.set(leaf, nodeRecord{Kind: kindVertexSplit, Vertex: v})
	d.nodes.setLeft(leaf, bottomLeaf)
	d.nodes.setRight(leaf, topLeaf)

	d.trace("insertVertex %v: leaf %d -> bottom trap %d (leaf %d), top trap %d (leaf %d)",
		vtx, leaf, bottomTrap, bottomLeaf, topTrap, topLeaf)
}

// splitByEdge splits a trapezoid at an edge: t is reused as the right
// trapezoid, a duplicate becomes the left one. Adjacencies are deliberately
// left untouched here; the neighbor-rewiring pass has the global view of
// the whole walk and overwrites every Above/Below slot that matters.
func (d *Decomposition) splitByEdge(t TrapID, e EdgeID) (left, right TrapID) {
	orig := d.traps.get(t)

	leftRec := orig
	leftRec.Node = noNode
	left = d.allocTrap(leftRec)
	d.setRightEdge(left, e)

	right = t
	orig.LeftEdge = e
	d.traps.set(t, orig)

	return left, right
}
