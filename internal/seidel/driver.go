package seidel

import "math/rand"

// Trapezoidize builds a full trapezoidal decomposition of one or more
// polygon loops: extract every boundary edge, randomize the insertion
// order, then insert each edge's endpoints and the edge itself one at a
// time. Loops may be nested (holes) or entirely disjoint; that distinction
// only matters later, when Inside is evaluated per trapezoid.
//
// rng controls the randomized incremental insertion order and must not be
// nil; callers that want deterministic output seed it themselves.
func Trapezoidize(loops [][]Vertex, rng *rand.Rand) *Decomposition {
	d := NewDecomposition()

	var edges []EdgeID
	for _, loop := range loops {
		n := len(loop)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a := d.InternVertex(loop[i])
			b := d.InternVertex(loop[(i+1)%n])
			if a == b {
				continue
			}
			edges = append(edges, d.NewEdge(a, b))
		}
	}

	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	inserted := make(map[VertexID]bool, 2*len(edges))
	for _, e := range edges {
		rec := d.edges.Get(e)

		topNew := !inserted[rec.Top]
		if topNew {
			d.insertVertex(rec.Top)
			inserted[rec.Top] = true
		}

		bottomNew := !inserted[rec.Bottom]
		if bottomNew {
			d.insertVertex(rec.Bottom)
			inserted[rec.Bottom] = true
		}

		d.insertEdge(e, topNew, bottomNew)
	}

	return d
}
