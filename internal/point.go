package internal

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// Points are plain values. Nothing in this package modifies a point after it
// has been created, and equality is exact: two points are equal only if both
// coordinates are bit for bit the same.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Vector from other to p
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(t float64) Point {
	return Point{p.X * t, p.Y * t}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Z component of the 3D cross product, treating both points as vectors.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) Midpoint(other Point) Point {
	return Point{0.5*other.X + 0.5*p.X, 0.5*other.Y + 0.5*p.Y}
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Well known text form, e.g. "POINT (2.5 2.5)"
func (p Point) String() string {
	return fmt.Sprintf("POINT (%s)", p.coordinates())
}

func (p Point) coordinates() string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

func (p Point) toGeom() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

func pointFromGeom(p geom.Point) Point {
	return Point{p.X, p.Y}
}
