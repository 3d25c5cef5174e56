package polytri

// This file contains no tests of its own. It is a helper, shared across this
// package's test files, for asserting that a Triangulate result is valid
// against the PolygonalArea it came from.

import (
	"math"
	"testing"

	"github.com/kestrelgeo/polytri/internal/seidel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertValidTriangulation checks that triangles is a valid triangulation of
// area:
//  1. every triangle is counter-clockwise and has nonzero area
//  2. every triangle vertex is a vertex of one of area's loops; no new point
//     was introduced
//  3. for a dense grid of sample points, a point lies inside some triangle
//     exactly when area.ContainsPointByEvenOdd says it lies inside the area
func AssertValidTriangulation(t *testing.T, area PolygonalArea, triangles []Triangle) {
	t.Helper()

	loopPoints := make(map[Vertex]struct{})
	for _, loop := range area.Loops {
		for _, v := range loop {
			loopPoints[v] = struct{}{}
		}
	}

	for _, tr := range triangles {
		require.True(t, seidel.CCW(tr.A, tr.B, tr.C), "clockwise or degenerate triangle: %+v", tr)
		require.Greater(t, math.Abs(tr.SignedArea()), 0.0, "zero-area triangle: %+v", tr)
		for _, v := range []Vertex{tr.A, tr.B, tr.C} {
			_, ok := loopPoints[v]
			require.True(t, ok, "triangle vertex %+v is not a vertex of the input area", v)
		}
	}

	validateBySampling(t, area, triangles)
}

func pointInTriangle(p Vertex, tr Triangle) bool {
	d1 := seidel.CCW(tr.A, tr.B, p) || seidel.Collinear(tr.A, tr.B, p)
	d2 := seidel.CCW(tr.B, tr.C, p) || seidel.Collinear(tr.B, tr.C, p)
	d3 := seidel.CCW(tr.C, tr.A, p) || seidel.Collinear(tr.C, tr.A, p)
	return d1 && d2 && d3
}

func trianglesContain(triangles []Triangle, p Vertex) bool {
	for _, tr := range triangles {
		if pointInTriangle(p, tr) {
			return true
		}
	}
	return false
}

func validateBySampling(t *testing.T, area PolygonalArea, triangles []Triangle) {
	t.Helper()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, loop := range area.Loops {
		for _, v := range loop {
			minX, minY = math.Min(minX, v.X), math.Min(minY, v.Y)
			maxX, maxY = math.Max(maxX, v.X), math.Max(maxY, v.Y)
		}
	}

	step := math.Max(maxX-minX, maxY-minY) / 40
	if step <= 0 {
		return
	}

	for y := minY - step; y <= maxY+step; y += step {
		for x := minX - step; x <= maxX+step; x += step {
			p := Vertex{X: x, Y: y}
			expected := area.ContainsPointByEvenOdd(p)
			actual := trianglesContain(triangles, p)
			if expected {
				assert.True(t, actual, "point %+v should be covered by the triangulation", p)
			} else {
				assert.False(t, actual, "point %+v should not be covered by the triangulation", p)
			}
		}
	}
}
