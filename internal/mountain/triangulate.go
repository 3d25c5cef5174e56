package mountain

import "github.com/kestrelgeo/polytri/internal/seidel"

// DefaultAngleThresholdDegrees and DefaultAngleEpsilonDegrees are the
// default adaptive ear-clipping parameters.
const (
	DefaultAngleThresholdDegrees = 150.0
	DefaultAngleEpsilonDegrees   = 0.1
)

// Triangulate runs adaptive angle-threshold ear-clipping over a mountain.
// thresholdDeg is the preferred maximum ear angle; epsilonDeg is how much
// the threshold relaxes on a pass that clips nothing.
//
// A mountain whose chain has fewer than three vertices is already
// degenerate and contributes no triangles.
func Triangulate(m Mountain, thresholdDeg, epsilonDeg float64) []seidel.Triangle {
	head := m.Bottom
	tail := head
	length := 1
	for tail.Above != nil {
		tail = tail.Above
		length++
	}
	if length < 3 {
		return nil
	}

	convexOrder := seidel.CCW(m.Base.Top, m.Base.Bottom, head.Above.Vertex)
	theta := thresholdDeg
	remaining := length - 2

	var triangles []seidel.Triangle
	for remaining > 0 {
		progressed := false
		v := head.Above
		for v != nil && v != tail {
			b, a := v.Below, v.Above
			next := v.Above

			if seidel.CCW(b.Vertex, v.Vertex, a.Vertex) == convexOrder &&
				seidel.Angle(a.Vertex, v.Vertex, b.Vertex) <= theta {
				if !seidel.Collinear(b.Vertex, v.Vertex, a.Vertex) {
					if convexOrder {
						triangles = append(triangles, seidel.Triangle{A: b.Vertex, B: v.Vertex, C: a.Vertex})
					} else {
						triangles = append(triangles, seidel.Triangle{A: b.Vertex, B: a.Vertex, C: v.Vertex})
					}
				}
				b.Above = a
				a.Below = b
				remaining--
				progressed = true
				if b == head {
					next = a
				} else {
					next = b
				}
			}
			v = next
		}
		if !progressed {
			theta += epsilonDeg
		}
	}
	return triangles
}
