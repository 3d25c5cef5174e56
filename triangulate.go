// Package polytri triangulates arbitrary planar polygonal areas — possibly
// non-convex, with holes, or composed of several disjoint loops — using
// Seidel's randomized incremental trapezoidal decomposition followed by
// monotone-mountain ear-clipping.
package polytri

import (
	"math/rand"
	"time"

	"github.com/kestrelgeo/polytri/internal/mountain"
	"github.com/kestrelgeo/polytri/internal/seidel"
)

// Triangulate decomposes area into non-overlapping counter-clockwise
// triangles whose union exactly covers area's interior.
//
// Input is validated up front; a self-intersecting loop, a loop with a
// duplicate vertex, or a loop of fewer than three vertices is reported as
// an *InvalidInputError without running the engine. Internal invariant
// violations, which indicate a bug rather than bad input, are recovered
// from a panic and returned as an error rather than crashing the caller.
func Triangulate(area PolygonalArea, opts ...Option) (triangles []Triangle, err error) {
	if verr := area.Validate(); verr != nil {
		return nil, verr
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	defer func() {
		if r := recover(); r != nil {
			err = recoverStructural(r)
		}
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if cfg.rngSeed != nil {
		rng = rand.New(rand.NewSource(*cfg.rngSeed))
	}

	loops := make([][]seidel.Vertex, len(area.Loops))
	for i, loop := range area.Loops {
		loops[i] = []seidel.Vertex(loop)
	}

	d := seidel.Trapezoidize(loops, rng)
	mountains := mountain.Extract(d)

	for _, m := range mountains {
		triangles = append(triangles, mountain.Triangulate(m, cfg.angleThresholdDegrees, cfg.angleEpsilonDegrees)...)
	}
	return triangles, nil
}
