package polytri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonalAreaValidateAcceptsSimplePolygon(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}}
	assert.NoError(t, area.Validate())
}

func TestPolygonalAreaValidateRejectsEmpty(t *testing.T) {
	var area PolygonalArea
	err := area.Validate()
	require.Error(t, err)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestPolygonalAreaValidateRejectsShortLoop(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}}}
	require.Error(t, area.Validate())
}

func TestPolygonalAreaValidateAcceptsNestedHole(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}},
	}}
	assert.NoError(t, area.Validate())
}

func TestContainsPointByEvenOddSquare(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}}
	assert.True(t, area.ContainsPointByEvenOdd(Vertex{X: 0.5, Y: 0.5}))
	assert.False(t, area.ContainsPointByEvenOdd(Vertex{X: 2, Y: 2}))
}

func TestContainsPointByEvenOddHole(t *testing.T) {
	area := PolygonalArea{Loops: []Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}},
	}}
	assert.True(t, area.ContainsPointByEvenOdd(Vertex{X: 1, Y: 1}))
	assert.False(t, area.ContainsPointByEvenOdd(Vertex{X: 5, Y: 5}), "inside the hole")
}
