package mountain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrelgeo/polytri/internal/seidel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polygonArea(loop []seidel.Vertex) float64 {
	sum := 0.0
	n := len(loop)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += loop[i].X*loop[j].Y - loop[j].X*loop[i].Y
	}
	return math.Abs(sum) / 2
}

func triangleArea(tr seidel.Triangle) float64 {
	return math.Abs((tr.B.X-tr.A.X)*(tr.C.Y-tr.A.Y)-(tr.C.X-tr.A.X)*(tr.B.Y-tr.A.Y)) / 2
}

func triangulateLoops(t *testing.T, loops [][]seidel.Vertex, seed int64) []seidel.Triangle {
	t.Helper()
	d := seidel.Trapezoidize(loops, rand.New(rand.NewSource(seed)))
	var triangles []seidel.Triangle
	for _, m := range Extract(d) {
		triangles = append(triangles, Triangulate(m, DefaultAngleThresholdDegrees, DefaultAngleEpsilonDegrees)...)
	}
	return triangles
}

func sumAreas(triangles []seidel.Triangle) float64 {
	total := 0.0
	for _, tr := range triangles {
		total += triangleArea(tr)
	}
	return total
}

func TestUnitTriangle(t *testing.T) {
	loop := []seidel.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	triangles := triangulateLoops(t, [][]seidel.Vertex{loop}, 1)
	require.Len(t, triangles, 1)
	assert.InDelta(t, polygonArea(loop), sumAreas(triangles), 1e-9)
	for _, tr := range triangles {
		assert.True(t, seidel.CCW(tr.A, tr.B, tr.C))
	}
}

func TestUnitSquare(t *testing.T) {
	loop := []seidel.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangles := triangulateLoops(t, [][]seidel.Vertex{loop}, 2)
	require.Len(t, triangles, 2)
	assert.InDelta(t, polygonArea(loop), sumAreas(triangles), 1e-9)
	for _, tr := range triangles {
		assert.True(t, seidel.CCW(tr.A, tr.B, tr.C))
	}
}

func TestSquareWithHole(t *testing.T) {
	outer := []seidel.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	hole := []seidel.Vertex{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}}
	triangles := triangulateLoops(t, [][]seidel.Vertex{outer, hole}, 3)

	expected := polygonArea(outer) - polygonArea(hole)
	assert.InDelta(t, expected, sumAreas(triangles), 1e-9)
	for _, tr := range triangles {
		assert.True(t, seidel.CCW(tr.A, tr.B, tr.C))
	}
}

func TestConcaveOctagon(t *testing.T) {
	loop := []seidel.Vertex{
		{X: -5.14, Y: 4.73},
		{X: -5.68, Y: 2.31},
		{X: -7.42, Y: 3.65},
		{X: -8.82, Y: 1.59},
		{X: -5.58, Y: -1.99},
		{X: -1.62, Y: -0.65},
		{X: -3.26, Y: 0.45},
		{X: -0.1, Y: 3.31},
	}
	triangles := triangulateLoops(t, [][]seidel.Vertex{loop}, 4)
	require.Len(t, triangles, len(loop)-2)
	assert.InDelta(t, polygonArea(loop), sumAreas(triangles), 1e-6)
	for _, tr := range triangles {
		assert.True(t, seidel.CCW(tr.A, tr.B, tr.C))
	}
}

func TestLShapeWithHorizontalEdge(t *testing.T) {
	loop := []seidel.Vertex{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
	triangles := triangulateLoops(t, [][]seidel.Vertex{loop}, 5)
	require.Len(t, triangles, len(loop)-2)
	assert.InDelta(t, polygonArea(loop), sumAreas(triangles), 1e-9)
	for _, tr := range triangles {
		assert.True(t, seidel.CCW(tr.A, tr.B, tr.C))
	}
}

func TestTwoDisjointTriangles(t *testing.T) {
	a := []seidel.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	b := []seidel.Vertex{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}}
	triangles := triangulateLoops(t, [][]seidel.Vertex{a, b}, 6)
	require.Len(t, triangles, 2)
	assert.InDelta(t, polygonArea(a)+polygonArea(b), sumAreas(triangles), 1e-9)
	for _, tr := range triangles {
		assert.True(t, seidel.CCW(tr.A, tr.B, tr.C))
	}
}
