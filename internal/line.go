package internal

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
)

// A line is stored as two points. Depending on where it came from it is either
// a segment (a polygon side, an altitude from vertex to foot) or an unbounded
// line sampled at two points (a mediatrix). Intersection always treats both
// operands as unbounded.
type Line struct {
	Start Point
	End   Point
}

func (l Line) Direction() Point {
	return l.End.Sub(l.Start)
}

func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

func (l Line) IsHorizontal() bool {
	return l.Start.Y == l.End.Y
}

func (l Line) IsVertical() bool {
	return l.Start.X == l.End.X
}

// Find the x value of the line at the given y. The line must not be horizontal.
func (l Line) SolveForX(y float64) float64 {
	d := l.Direction()
	return l.Start.X + (y-l.Start.Y)*d.X/d.Y
}

// Distance from p to the closest point on the segment. Past either end this
// is the distance to that endpoint, not to the extended line.
func (l Line) DistanceTo(p Point) float64 {
	if l.Start.Equals(l.End) {
		return p.DistanceTo(l.Start)
	}
	d := l.Direction()
	lengthSquared := d.Dot(d)
	r := p.Sub(l.Start).Dot(d) / lengthSquared
	if r <= 0 {
		return p.DistanceTo(l.Start)
	}
	if r >= 1 {
		return p.DistanceTo(l.End)
	}
	s := l.Start.Sub(p).Cross(d) / lengthSquared
	return math.Abs(s) * math.Sqrt(lengthSquared)
}

// Intersection of the two unbounded lines through each pair of points. Solves
// Start + s*Direction() == other.Start + u*other.Direction() for s. Parallel
// lines, and lines whose two points coincide, have no single intersection and
// give ErrDegenerateGeometry.
func (l Line) Intersection(other Line) (Point, error) {
	r := l.Direction()
	q := other.Direction()
	denominator := r.Cross(q)
	if denominator == 0 {
		return Point{}, errors.Wrapf(ErrDegenerateGeometry, "lines %v and %v do not cross", l, other)
	}
	s := other.Start.Sub(l.Start).Cross(q) / denominator
	return l.Start.Add(r.Scale(s)), nil
}

// Well known text form, e.g. "LINESTRING (1 1, 4.2 2.6)"
func (l Line) String() string {
	return fmt.Sprintf("LINESTRING (%s, %s)", l.Start.coordinates(), l.End.coordinates())
}

func (l Line) toGeom() geom.LineString {
	return geom.LineString{l.Start.toGeom(), l.End.toGeom()}
}
