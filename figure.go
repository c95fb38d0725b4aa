// Planar geometric figures for Go.
//
// A figure is a simple closed polygon, given as a ring of vertices whose first
// and last points are equal. This package measures figures (area, perimeter,
// centroid, containment) and builds derived lines from them: side midpoints,
// perpendicular bisectors (mediatrices), and for triangles the altitudes and
// the orthocenter.
package figure

import (
	"io"

	"github.com/osuushi/figure/internal"
)

type Point = internal.Point
type Line = internal.Line
type Polygon = internal.Polygon
type Kind = internal.Kind
type Location = internal.Location
type Geometry = internal.Geometry

const (
	KindInvalid       = internal.KindInvalid
	KindTriangle      = internal.KindTriangle
	KindQuadrilateral = internal.KindQuadrilateral
	KindPentagon      = internal.KindPentagon
	KindHexagon       = internal.KindHexagon
	KindPolygon       = internal.KindPolygon
)

const (
	Outside    = internal.Outside
	Inside     = internal.Inside
	OnBoundary = internal.OnBoundary
)

const MediatrixSampling = internal.MediatrixSampling

// All errors from this package wrap one of these. Match them with errors.Is.
var (
	ErrInvalidGeometry    = internal.ErrInvalidGeometry
	ErrIndexOutOfRange    = internal.ErrIndexOutOfRange
	ErrNotATriangle       = internal.ErrNotATriangle
	ErrDegenerateGeometry = internal.ErrDegenerateGeometry
)

// Build a figure from a closed ring of points, e.g.
//
//	figure.New(figure.Point{0, 0}, figure.Point{0, 5}, figure.Point{5, 5}, figure.Point{0, 0})
func New(points ...Point) (*Polygon, error) {
	return internal.NewPolygon(points)
}

// Parse "POINT (x y)", "LINESTRING (x y, x y)" or "POLYGON ((x y, ...))".
func ParseWKT(wkt string) (Geometry, error) {
	return internal.ParseWKT(wkt)
}

func ParsePolygonWKT(wkt string) (*Polygon, error) {
	return internal.ParsePolygonWKT(wkt)
}

func ParsePointWKT(wkt string) (Point, error) {
	return internal.ParsePointWKT(wkt)
}

func MarshalGeoJSON(g Geometry) ([]byte, error) {
	return internal.MarshalGeoJSON(g)
}

func UnmarshalGeoJSON(data []byte) (Geometry, error) {
	return internal.UnmarshalGeoJSON(data)
}

func UnmarshalPolygonGeoJSON(data []byte) (*Polygon, error) {
	return internal.UnmarshalPolygonGeoJSON(data)
}

// Midpoint of side, where side i joins vertex i to vertex i+1.
func MidpointOfSide(poly *Polygon, side int) (result Point, err error) {
	defer func() {
		if recoveredErr := internal.HandleFigurePanicRecover(recover()); recoveredErr != nil {
			result = Point{}
			err = recoveredErr
		}
	}()
	return internal.MidpointOfSide(poly, side), nil
}

// Perpendicular bisector of a side, sampled at x = ±MediatrixSampling, or at
// y = ±MediatrixSampling when the bisector is vertical or the general case.
func MediatrixOfSide(poly *Polygon, side int) (result Line, err error) {
	defer func() {
		if recoveredErr := internal.HandleFigurePanicRecover(recover()); recoveredErr != nil {
			result = Line{}
			err = recoveredErr
		}
	}()
	return internal.MediatrixOfSide(poly, side), nil
}

// Altitude of a triangle from the given vertex. The line starts at the vertex.
func AltitudeFromVertex(poly *Polygon, vertex int) (result Line, err error) {
	defer func() {
		if recoveredErr := internal.HandleFigurePanicRecover(recover()); recoveredErr != nil {
			result = Line{}
			err = recoveredErr
		}
	}()
	return internal.AltitudeFromVertex(poly, vertex), nil
}

func Orthocenter(poly *Polygon) (result Point, err error) {
	defer func() {
		if recoveredErr := internal.HandleFigurePanicRecover(recover()); recoveredErr != nil {
			result = Point{}
			err = recoveredErr
		}
	}()
	return internal.Orthocenter(poly), nil
}

// Write a PNG of the figure with the given lines drawn over it.
func SavePNG(path string, poly *Polygon, lines []Line, scale float64) error {
	return internal.SavePNG(path, poly, lines, scale)
}

// Show a PNG written by SavePNG inline, in terminals that support it.
func CatPNG(path string, w io.Writer) {
	internal.CatPNG(path, w)
}
