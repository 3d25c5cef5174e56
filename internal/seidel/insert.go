package seidel

// direction names which vertical neighbor list a walk is following.
type direction int8

const (
	dirUp direction = iota
	dirDown
)

// stepNeighbor picks the single next trapezoid in the walk, resolving a
// branch (two neighbors in that direction) by testing which side of the new
// edge the shared horizontal boundary's extreme point falls on.
func (d *Decomposition) stepNeighbor(cur TrapID, dir direction, eg EdgeGeom) (TrapID, bool) {
	rec := d.traps.get(cur)
	list := rec.Above
	if dir == dirDown {
		list = rec.Below
	}
	switch list.len() {
	case 0:
		return noTrap, false
	case 1:
		return firstNonEmpty(list), true
	default:
		left := list[0]
		var p Vertex
		if dir == dirUp {
			lrec := d.traps.get(left)
			p = Vertex{X: d.cornerX(left, true, false), Y: d.vertexY(lrec.BottomVertex)}
		} else {
			lrec := d.traps.get(left)
			p = Vertex{X: d.cornerX(left, true, true), Y: d.vertexY(lrec.TopVertex)}
		}
		if eg.PointRightOf(p) {
			return list[0], true
		}
		return list[1], true
	}
}

// walkToVertex walks from start in dir until it reaches (inclusive) the
// trapezoid whose top/bottom vertex equals target, returning every
// trapezoid visited along the way except start itself.
func (d *Decomposition) walkToVertex(start TrapID, dir direction, target VertexID, eg EdgeGeom, endpoint func(trapRecord) VertexID) []TrapID {
	var out []TrapID
	cur := start
	for endpoint(d.traps.get(cur)) != target {
		next, ok := d.stepNeighbor(cur, dir, eg)
		if !ok {
			fatalf("edge insertion walk ran out of neighbors before reaching its endpoint")
		}
		out = append(out, next)
		cur = next
	}
	return out
}

// insertEdge locates the trapezoids the new edge crosses, splits each one,
// rewires the neighbor lists at the top endpoint, bottom endpoint and every
// interior horizontal border, then merges any vertically redundant
// trapezoid stacks the split produced.
//
// topJustInserted/bottomJustInserted tell the top/bottom endpoint rewiring
// whether this call is also the call that just inserted that vertex into
// the DAG (true) or whether the vertex already existed from a previous
// edge sharing it (false) — the two cases rewire differently.
func (d *Decomposition) insertEdge(e EdgeID, topJustInserted, bottomJustInserted bool) {
	eg := d.edgeGeom(e)
	edgeRec := d.edges.Get(e)

	startLeaf := d.locate(eg.Midpoint())
	startTrap := d.nodes.asLeaf(startLeaf)

	upPath := d.walkToVertex(startTrap, dirUp, edgeRec.Top, eg, func(r trapRecord) VertexID { return r.TopVertex })
	downPath := d.walkToVertex(startTrap, dirDown, edgeRec.Bottom, eg, func(r trapRecord) VertexID { return r.BottomVertex })

	ordered := make([]TrapID, 0, len(upPath)+1+len(downPath))
	for i := len(upPath) - 1; i >= 0; i-- {
		ordered = append(ordered, upPath[i])
	}
	ordered = append(ordered, startTrap)
	ordered = append(ordered, downPath...)

	leaves := make([]NodeID, len(ordered))
	for i, t := range ordered {
		leaves[i] = d.traps.get(t).Node
	}

	lefts := make([]TrapID, len(ordered))
	rights := make([]TrapID, len(ordered))
	for i, t := range ordered {
		lefts[i], rights[i] = d.splitByEdge(t, e)
	}

	d.rewireAfterEdgeSplit(e, eg, lefts, rights, topJustInserted, bottomJustInserted)

	for i := range ordered {
		leftLeaf := d.newLeafFor(lefts[i])
		rightLeaf := d.newLeafFor(rights[i])
		d.nodes.set(leaves[i], nodeRecord{Kind: kindEdgeSplit, Edge: e})
		d.nodes.setLeft(leaves[i], leftLeaf)
		d.nodes.setRight(leaves[i], rightLeaf)
	}

	d.mergeStack(lefts)
	d.mergeStack(rights)

	d.trace("insertEdge %v: split %d trapezoids", edgeRec, len(ordered))
}

// rewireAfterEdgeSplit fixes up Above/Below neighbor lists for every
// (left, right) pair produced by splitting the ordered trapezoid chain.
func (d *Decomposition) rewireAfterEdgeSplit(e EdgeID, eg EdgeGeom, lefts, rights []TrapID, topJustInserted, bottomJustInserted bool) {
	k := len(lefts)

	d.rewireTopEndpoint(e, eg, lefts[0], rights[0], topJustInserted)
	d.rewireBottomEndpoint(e, eg, lefts[k-1], rights[k-1], bottomJustInserted)

	for j := 0; j < k-1; j++ {
		d.rewireInteriorBorder(eg, lefts[j], rights[j], lefts[j+1], rights[j+1])
	}
}

func (d *Decomposition) rewireTopEndpoint(e EdgeID, eg EdgeGeom, L, R TrapID, topJustInserted bool) {
	ext := d.traps.get(R).Above

	if topJustInserted {
		if ext.len() != 1 {
			fatalf("top endpoint: expected exactly one outside trapezoid above, got %d", ext.len())
		}
		outside := firstNonEmpty(ext)
		d.setAbove(L, neighborList{outside, noTrap})
		d.setBelow(outside, neighborList{L, R})
		return
	}

	vTop := d.edges.Get(e).Top
	leftEdgeOfL := d.traps.get(L).LeftEdge
	rightEdgeOfR := d.traps.get(R).RightEdge
	isLeftPeak := leftEdgeOfL != noEdge && d.edges.Get(leftEdgeOfL).Top == vTop
	isRightPeak := rightEdgeOfR != noEdge && d.edges.Get(rightEdgeOfR).Top == vTop

	switch {
	case isLeftPeak:
		if ext.len() != 1 {
			fatalf("top endpoint (left peak): expected exactly one outside trapezoid, got %d", ext.len())
		}
	case isRightPeak:
		if ext.len() != 1 {
			fatalf("top endpoint (right peak): expected exactly one outside trapezoid, got %d", ext.len())
		}
		outside := firstNonEmpty(ext)
		d.setAbove(L, neighborList{outside, noTrap})
		d.setAbove(R, neighborList{noTrap, noTrap})
		d.replaceBelow(outside, R, L)
	default:
		if ext.len() != 2 {
			fatalf("top endpoint (extends old edge): expected two outside trapezoids, got %d", ext.len())
		}
		d.setAbove(L, neighborList{ext[0], noTrap})
		d.setAbove(R, neighborList{ext[1], noTrap})
		d.replaceBelow(ext[0], R, L)
	}
}

func (d *Decomposition) rewireBottomEndpoint(e EdgeID, eg EdgeGeom, L, R TrapID, bottomJustInserted bool) {
	ext := d.traps.get(R).Below

	if bottomJustInserted {
		if ext.len() != 1 {
			fatalf("bottom endpoint: expected exactly one outside trapezoid below, got %d", ext.len())
		}
		outside := firstNonEmpty(ext)
		d.setBelow(L, neighborList{outside, noTrap})
		d.setAbove(outside, neighborList{L, R})
		return
	}

	vBottom := d.edges.Get(e).Bottom
	leftEdgeOfL := d.traps.get(L).LeftEdge
	rightEdgeOfR := d.traps.get(R).RightEdge
	isLeftPeak := leftEdgeOfL != noEdge && d.edges.Get(leftEdgeOfL).Bottom == vBottom
	isRightPeak := rightEdgeOfR != noEdge && d.edges.Get(rightEdgeOfR).Bottom == vBottom

	switch {
	case isLeftPeak:
		if ext.len() != 1 {
			fatalf("bottom endpoint (left peak): expected exactly one outside trapezoid, got %d", ext.len())
		}
	case isRightPeak:
		if ext.len() != 1 {
			fatalf("bottom endpoint (right peak): expected exactly one outside trapezoid, got %d", ext.len())
		}
		outside := firstNonEmpty(ext)
		d.setBelow(L, neighborList{outside, noTrap})
		d.setBelow(R, neighborList{noTrap, noTrap})
		d.replaceAbove(outside, R, L)
	default:
		if ext.len() != 2 {
			fatalf("bottom endpoint (extends old edge): expected two outside trapezoids, got %d", ext.len())
		}
		d.setBelow(L, neighborList{ext[0], noTrap})
		d.setBelow(R, neighborList{ext[1], noTrap})
		d.replaceAbove(ext[0], R, L)
	}
}

// rewireInteriorBorder fixes the horizontal border between one split pair
// and the pair directly below it (the downward/upward branch and no-branch
// cases).
func (d *Decomposition) rewireInteriorBorder(eg EdgeGeom, topLeft, topRight, botLeft, botRight TrapID) {
	topRightBelow := d.traps.get(topRight).Below
	botRightAbove := d.traps.get(botRight).Above

	switch {
	case topRightBelow.len() == 2:
		additional := topRightBelow[0]
		arec := d.traps.get(additional)
		p := Vertex{X: d.cornerX(additional, true, true), Y: d.vertexY(arec.TopVertex)}
		if eg.PointRightOf(p) {
			d.setBelow(topLeft, neighborList{botLeft, noTrap})
			d.setAbove(botLeft, neighborList{topLeft, noTrap})
		} else {
			d.setBelow(topRight, neighborList{botRight, noTrap})
			d.setAbove(botRight, neighborList{topRight, noTrap})
			d.setBelow(topLeft, neighborList{additional, botLeft})
			d.setAbove(botLeft, neighborList{topLeft, noTrap})
			d.setAbove(additional, neighborList{topLeft, noTrap})
		}

	case botRightAbove.len() == 2:
		additional := botRightAbove[0]
		arec := d.traps.get(additional)
		p := Vertex{X: d.cornerX(additional, true, false), Y: d.vertexY(arec.BottomVertex)}
		if eg.PointRightOf(p) {
			d.setAbove(botLeft, neighborList{topLeft, noTrap})
			d.setBelow(topLeft, neighborList{botLeft, noTrap})
		} else {
			d.setAbove(botRight, neighborList{topRight, noTrap})
			d.setBelow(topRight, neighborList{botRight, noTrap})
			d.setAbove(botLeft, neighborList{additional, topLeft})
			d.setBelow(topLeft, neighborList{botLeft, noTrap})
			d.setBelow(additional, neighborList{botLeft, noTrap})
		}

	case topRightBelow.len() == 1 && botRightAbove.len() == 1:
		d.setBelow(topLeft, neighborList{botLeft, noTrap})
		d.setAbove(botLeft, neighborList{topLeft, noTrap})

	default:
		fatalf("interior border: unexpected neighbor arity (top.below=%d, bot.above=%d)",
			topRightBelow.len(), botRightAbove.len())
	}
}

func (d *Decomposition) setAbove(t TrapID, nl neighborList) {
	rec := d.traps.get(t)
	rec.Above = nl
	d.traps.set(t, rec)
}

func (d *Decomposition) setBelow(t TrapID, nl neighborList) {
	rec := d.traps.get(t)
	rec.Below = nl
	d.traps.set(t, rec)
}

func (d *Decomposition) replaceAbove(t TrapID, old, new TrapID) {
	rec := d.traps.get(t)
	rec.Above.replace(old, new)
	d.traps.set(t, rec)
}

func (d *Decomposition) replaceBelow(t TrapID, old, new TrapID) {
	rec := d.traps.get(t)
	rec.Below.replace(old, new)
	d.traps.set(t, rec)
}

// mergeStack scans a top-to-bottom chain of trapezoids and merges every
// maximal run sharing identical (left_edge, right_edge) into its top member.
func (d *Decomposition) mergeStack(chain []TrapID) {
	i := 0
	for i < len(chain) {
		j := i + 1
		for j < len(chain) && d.sameEdges(chain[i], chain[j]) {
			j++
		}
		if j-i >= 2 {
			d.mergeGroup(chain[i:j])
		}
		i = j
	}
}

func (d *Decomposition) sameEdges(a, b TrapID) bool {
	ra, rb := d.traps.get(a), d.traps.get(b)
	return ra.LeftEdge == rb.LeftEdge && ra.RightEdge == rb.RightEdge
}

func (d *Decomposition) mergeGroup(group []TrapID) {
	top := group[0]
	bottom := group[len(group)-1]

	topRec := d.traps.get(top)
	bottomRec := d.traps.get(bottom)
	topNode := topRec.Node

	topRec.BottomVertex = bottomRec.BottomVertex
	topRec.Below = bottomRec.Below
	d.traps.set(top, topRec)

	for _, x := range bottomRec.Below {
		if x == noTrap {
			continue
		}
		xrec := d.traps.get(x)
		xrec.Above.replace(bottom, top)
		d.traps.set(x, xrec)
	}

	for _, m := range group[1:] {
		mrec := d.traps.get(m)
		d.replaceLeaf(mrec.Node, topNode)
		d.registry.remove(mrec.RightEdge, m)
	}
}
