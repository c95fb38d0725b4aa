package internal

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the figure so lines at the edge of the bounds stay visible
const drawPadding = 20

// Render the polygon filled, with the given construction lines on top. The
// image covers the bounds of both, scaled by scale pixels per unit, with the
// origin at the bottom left.
func Render(poly *Polygon, lines []Line, scale float64) image.Image {
	return newFigureContext(poly, lines, scale).Image()
}

func SavePNG(path string, poly *Polygon, lines []Line, scale float64) error {
	return newFigureContext(poly, lines, scale).SavePNG(path)
}

// Print a PNG file in the terminal. This only works in terminals that support
// the iTerm inline image protocol.
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func newFigureContext(poly *Polygon, lines []Line, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range poly.points {
		extend(p)
	}
	for _, l := range lines {
		extend(l.Start)
		extend(l.End)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.MoveTo(poly.points[0].X, poly.points[0].Y)
	for _, p := range poly.points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 0.5, 0)
	for _, l := range lines {
		c.DrawLine(l.Start.X, l.Start.Y, l.End.X, l.End.Y)
		c.Stroke()
	}
	return c
}
