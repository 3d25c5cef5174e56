// Command polytri-draw is a debugging aid, not part of the triangulation
// core: it reads polygon loops from a file, triangulates them through the
// polytri package's public entry point, and renders the result to a PNG
// (previewed inline over iTerm2 when available). None of this package's
// dependencies are reachable from the core engine; the core consumes
// nothing beyond the standard library and github.com/pkg/errors.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/kestrelgeo/polytri"
	"github.com/kestrelgeo/polytri/dbg"
)

var (
	inputPath     = kingpin.Arg("input", "path to a polygon file (blank-line separated loops of \"x y\" points)").Required().String()
	angleDegrees  = kingpin.Flag("angle-threshold", "preferred maximum ear angle in degrees").Default("150").Float64()
	angleEpsilon  = kingpin.Flag("angle-epsilon", "degrees by which the angle threshold relaxes per retry").Default("0.1").Float64()
	seed          = kingpin.Flag("seed", "deterministic RNG seed for edge insertion order").Int64()
	hasSeed       = kingpin.Flag("seeded", "use --seed instead of nondeterministic randomness").Bool()
	outputPath    = kingpin.Flag("out", "PNG output path").Default("/tmp/polytri-draw.png").String()
	scale         = kingpin.Flag("scale", "pixels per input unit").Default("40").Float64()
	skipPreview   = kingpin.Flag("no-preview", "skip the inline iTerm2 preview").Bool()
)

func main() {
	kingpin.Parse()

	loops, err := readLoops(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	area := polytri.PolygonalArea{Loops: loops}
	opts := []polytri.Option{
		polytri.WithAngleThresholdDegrees(*angleDegrees),
		polytri.WithAngleEpsilonDegrees(*angleEpsilon),
	}
	if *hasSeed {
		opts = append(opts, polytri.WithRNGSeed(*seed))
	}

	triangles, err := polytri.Triangulate(area, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	fmt.Printf("%s: %d loops -> %s\n",
		aurora.Cyan(*inputPath),
		len(loops),
		aurora.Green(fmt.Sprintf("%d triangles", len(triangles))))

	if err := render(triangles, *outputPath, *scale); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	if !*skipPreview {
		imgcat.CatFile(*outputPath, os.Stdout)
	}
}

func readLoops(path string) ([]polytri.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var loops []polytri.Polygon
	var current polytri.Polygon

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				loops = append(loops, current)
				current = nil
			}
			continue
		}
		v, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		current = append(current, v)
	}
	if len(current) > 0 {
		loops = append(loops, current)
	}
	return loops, scanner.Err()
}

func parsePoint(line string) (polytri.Vertex, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return polytri.Vertex{}, fmt.Errorf("polytri-draw: malformed point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return polytri.Vertex{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return polytri.Vertex{}, err
	}
	return polytri.Vertex{X: x, Y: y}, nil
}

const drawPadding = 20

func render(triangles []polytri.Triangle, path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range triangles {
		for _, v := range []polytri.Vertex{t.A, t.B, t.C} {
			minX, minY = math.Min(minX, v.X), math.Min(minY, v.Y)
			maxX, maxY = math.Max(maxX, v.X), math.Max(maxY, v.Y)
		}
	}
	if len(triangles) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1.0 / scale)
	for i, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.5, 0.9, 0.4)
		c.FillPreserve()
		c.SetRGB(0, 0, 0)
		c.Stroke()

		centerX, centerY := (t.A.X+t.B.X+t.C.X)/3, (t.A.Y+t.B.Y+t.C.Y)/3
		cx, cy := c.TransformPoint(centerX, centerY)
		c.Push()
		c.Identity()
		c.SetRGB(0, 0, 0)
		c.DrawStringAnchored(dbg.Name("tri", i), cx, cy, 0.5, 0.5)
		c.Pop()
	}

	return c.SavePNG(path)
}
