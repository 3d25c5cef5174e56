package polytri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateUnitTriangle(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	}}
	triangles, err := Triangulate(area, WithRNGSeed(1))
	require.NoError(t, err)
	require.Len(t, triangles, 1)
	AssertValidTriangulation(t, area, triangles)
}

func TestTriangulateUnitSquare(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}}
	triangles, err := Triangulate(area, WithRNGSeed(2))
	require.NoError(t, err)
	require.Len(t, triangles, 2)
	AssertValidTriangulation(t, area, triangles)
}

func TestTriangulateSquareWithHole(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}},
	}}
	triangles, err := Triangulate(area, WithRNGSeed(3))
	require.NoError(t, err)
	AssertValidTriangulation(t, area, triangles)
}

func TestTriangulateConcaveOctagon(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{{
		{X: -5.14, Y: 4.73},
		{X: -5.68, Y: 2.31},
		{X: -7.42, Y: 3.65},
		{X: -8.82, Y: 1.59},
		{X: -5.58, Y: -1.99},
		{X: -1.62, Y: -0.65},
		{X: -3.26, Y: 0.45},
		{X: -0.1, Y: 3.31},
	}}}
	triangles, err := Triangulate(area, WithRNGSeed(4))
	require.NoError(t, err)
	require.Len(t, triangles, len(area.Loops[0])-2)
	AssertValidTriangulation(t, area, triangles)
}

func TestTriangulateLShapeWithHorizontalEdge(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}},
	}}
	triangles, err := Triangulate(area, WithRNGSeed(5))
	require.NoError(t, err)
	require.Len(t, triangles, len(area.Loops[0])-2)
	AssertValidTriangulation(t, area, triangles)
}

func TestTriangulateTwoDisjointTriangles(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}},
	}}
	triangles, err := Triangulate(area, WithRNGSeed(6))
	require.NoError(t, err)
	require.Len(t, triangles, 2)
	AssertValidTriangulation(t, area, triangles)
}

func TestTriangulateIsDeterministicGivenSameSeed(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 2, Y: 1}, {X: 0, Y: 3}},
	}}
	first, err := Triangulate(area, WithRNGSeed(123))
	require.NoError(t, err)
	second, err := Triangulate(area, WithRNGSeed(123))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTriangulateRejectsTooFewVertices(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}}}}
	_, err := Triangulate(area)
	require.Error(t, err)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestTriangulateRejectsSelfIntersectingLoop(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	}}
	_, err := Triangulate(area)
	require.Error(t, err)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestTriangulateRejectsDuplicateVertex(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	}}
	_, err := Triangulate(area)
	require.Error(t, err)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestTriangulateCustomAngleThreshold(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}}
	triangles, err := Triangulate(area,
		WithAngleThresholdDegrees(100),
		WithAngleEpsilonDegrees(1),
		WithRNGSeed(9),
	)
	require.NoError(t, err)
	AssertValidTriangulation(t, area, triangles)
}
