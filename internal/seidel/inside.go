package seidel

// Inside answers the inside/outside test for a trapezoid using the
// right-edge registry parity argument: a trapezoid missing a side edge is
// outside; otherwise it shares the opposite parity of whichever trapezoid
// has its left edge as a right edge, because crossing an edge always flips
// which side of the polygon boundary you are on.
//
// Implemented iteratively rather than by direct recursion: the chain of
// trapezoids visited before a known value is reached is bounded by the
// number of edges a leftward ray from the query trapezoid would cross, so
// an explicit stack keeps this from blowing out the call stack on
// pathological inputs.
func (d *Decomposition) Inside(start TrapID) bool {
	var chain []TrapID
	cur := start
	for {
		rec := d.traps.get(cur)
		if rec.insideKnown {
			return d.unwindChain(chain, rec.inside)
		}
		if rec.isOutsideByBoundary() {
			d.cacheInside(cur, false)
			return d.unwindChain(chain, false)
		}
		u, ok := d.registry.any(rec.LeftEdge)
		if !ok {
			fatalf("inside test: no trapezoid registered with right edge %d", rec.LeftEdge)
		}
		chain = append(chain, cur)
		cur = u
	}
}

// unwindChain propagates a known inside value backward across a chain of
// pending trapezoids, flipping parity at each step, caching every value it
// derives along the way.
func (d *Decomposition) unwindChain(chain []TrapID, val bool) bool {
	for i := len(chain) - 1; i >= 0; i-- {
		val = !val
		d.cacheInside(chain[i], val)
	}
	return val
}

func (d *Decomposition) cacheInside(t TrapID, val bool) {
	rec := d.traps.get(t)
	rec.insideKnown = true
	rec.inside = val
	d.traps.set(t, rec)
}

// IsInsideAt locates the trapezoid containing query and reports whether it
// lies inside the decomposed area.
func (d *Decomposition) IsInsideAt(query Vertex) bool {
	return d.Inside(d.LocateTrapezoid(query))
}
