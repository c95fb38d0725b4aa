package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
)

// A polygon is a single closed ring. The closing vertex is stored explicitly,
// so Points[0] == Points[len(Points)-1] always holds, and a triangle has four
// points. The ring is the only representation; every measure is computed from
// it on demand.
type Polygon struct {
	points []Point
}

// Build a polygon from a closed ring. The points are copied.
func NewPolygon(points []Point) (*Polygon, error) {
	if len(points) < 4 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "ring needs at least 4 points, got %d", len(points))
	}
	if !points[0].Equals(points[len(points)-1]) {
		return nil, errors.Wrapf(ErrInvalidGeometry, "ring is not closed: %v != %v", points[0], points[len(points)-1])
	}
	poly := &Polygon{points: make([]Point, len(points))}
	copy(poly.points, points)
	return poly, nil
}

// Kind classifies a polygon by its number of sides.
type Kind int

const (
	KindInvalid Kind = iota
	KindTriangle
	KindQuadrilateral
	KindPentagon
	KindHexagon
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "Triangle"
	case KindQuadrilateral:
		return "Quadrilateral"
	case KindPentagon:
		return "Pentagon"
	case KindHexagon:
		return "Hexagon"
	case KindPolygon:
		return "Polygon"
	default:
		return "Invalid"
	}
}

// Where a point lies relative to a polygon.
type Location int

const (
	Outside Location = iota
	Inside
	OnBoundary
)

func (l Location) String() string {
	return [...]string{"Outside", "Inside", "OnBoundary"}[l]
}

// Copy of the closed ring, including the closing vertex.
func (poly *Polygon) Vertices() []Point {
	points := make([]Point, len(poly.points))
	copy(points, poly.points)
	return points
}

func (poly *Polygon) SideCount() int {
	return len(poly.points) - 1
}

func (poly *Polygon) Classify() Kind {
	sides := poly.SideCount()
	switch {
	case sides < 3:
		return KindInvalid
	case sides == 3:
		return KindTriangle
	case sides == 4:
		return KindQuadrilateral
	case sides == 5:
		return KindPentagon
	case sides == 6:
		return KindHexagon
	default:
		return KindPolygon
	}
}

// Vertex by open ring index. The closing vertex is not addressable, so the
// valid range is [0, SideCount()).
func (poly *Polygon) VertexAt(index int) (Point, error) {
	if index < 0 || index >= poly.SideCount() {
		return Point{}, errors.Wrapf(ErrIndexOutOfRange, "vertex %d of %d", index, poly.SideCount())
	}
	return poly.points[index], nil
}

// Side i runs from vertex i to vertex i+1, wrapping so the last side closes
// the ring.
func (poly *Polygon) Side(index int) (Line, error) {
	start, err := poly.VertexAt(index)
	if err != nil {
		return Line{}, errors.Wrapf(err, "side %d", index)
	}
	end := poly.points[CircularIndex(index+1, poly.SideCount())]
	return Line{start, end}, nil
}

// Unsigned shoelace area.
func (poly *Polygon) Area() float64 {
	return poly.toGeom().Area()
}

func (poly *Polygon) Perimeter() float64 {
	return geom.LineString(poly.ring()).Length()
}

// Area weighted centroid of the interior. A ring with zero area has no
// centroid, and both coordinates come back NaN.
func (poly *Polygon) Centroid() Point {
	return pointFromGeom(poly.toGeom().Centroid())
}

// Contains reports whether p lies strictly inside the polygon. Points on an
// edge or vertex are not contained; use Locate to tell them apart from
// outside points.
func (poly *Polygon) Contains(p Point) bool {
	return poly.Locate(p) == Inside
}

func (poly *Polygon) Locate(p Point) Location {
	switch p.toGeom().Within(poly.toGeom()) {
	case geom.Inside:
		return Inside
	case geom.OnEdge:
		return OnBoundary
	default:
		return Outside
	}
}

// Twice the signed area is positive when the ring winds counterclockwise.
func (poly *Polygon) IsCCW() bool {
	var sum float64
	for i := 0; i < poly.SideCount(); i++ {
		sum += poly.points[i].Cross(poly.points[i+1])
	}
	return sum > 0
}

// Corners of the axis aligned bounding box.
func (poly *Polygon) Bounds() (min, max Point) {
	b := geom.LineString(poly.ring()).Bounds()
	return pointFromGeom(b.Min), pointFromGeom(b.Max)
}

// Insert p before the vertex currently at position, where position indexes
// the open ring and may equal SideCount() to append after the last vertex. The
// ring is closed again afterwards, so inserting at 0 also replaces the closing
// vertex. All later indices shift by one.
func (poly *Polygon) InsertVertexAt(p Point, position int) error {
	sides := poly.SideCount()
	if position < 0 || position > sides {
		return errors.Wrapf(ErrIndexOutOfRange, "insert position %d outside [0, %d]", position, sides)
	}
	points := make([]Point, 0, len(poly.points)+1)
	points = append(points, poly.points[:position]...)
	points = append(points, p)
	points = append(points, poly.points[position:sides]...)
	points = append(points, points[0])
	poly.points = points
	return nil
}

// Well known text form, e.g. "POLYGON ((0 0, 0 5, 5 5, 5 0, 0 0))"
func (poly *Polygon) String() string {
	parts := make([]string, len(poly.points))
	for i, p := range poly.points {
		parts[i] = p.coordinates()
	}
	return fmt.Sprintf("POLYGON ((%s))", strings.Join(parts, ", "))
}

// Print every point of the ring, closing vertex included, one per line.
func (poly *Polygon) Print(w io.Writer) error {
	for _, p := range poly.points {
		if _, err := fmt.Fprintf(w, "\t(%s, %s)\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return nil
}

func (poly *Polygon) ring() []geom.Point {
	ring := make([]geom.Point, len(poly.points))
	for i, p := range poly.points {
		ring[i] = p.toGeom()
	}
	return ring
}

func (poly *Polygon) toGeom() geom.Polygon {
	return geom.Polygon{poly.ring()}
}
