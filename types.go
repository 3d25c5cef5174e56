package polytri

import "github.com/kestrelgeo/polytri/internal/seidel"

// Vertex is an (x, y) coordinate, optionally carrying a caller-chosen Tag
// that survives vertex deduplication (coincident input vertices across
// loops collapse to one identity; the first Tag seen wins).
type Vertex = seidel.Vertex

// Triangle is an ordered, counter-clockwise triple of Vertices.
type Triangle = seidel.Triangle
