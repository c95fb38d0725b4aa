package internal

// Constructions of derived points and lines. These only read the polygon.
//
// Every function here panics with a FigureError when the input cannot support
// the construction (bad index, not a triangle, zero length side, parallel
// altitudes). Use HandleFigurePanicRecover to turn that into an error.

// A mediatrix is unbounded, so it is represented by the two points where it
// crosses x = ±MediatrixSampling or y = ±MediatrixSampling.
const MediatrixSampling = 10.0

func mustVertexAt(poly *Polygon, index int) Point {
	p, err := poly.VertexAt(index)
	check(err)
	return p
}

// The endpoints of a side, checked against the same range as VertexAt.
func sideEndpoints(poly *Polygon, side int) (a, b Point) {
	a = mustVertexAt(poly, side)
	b = mustVertexAt(poly, CircularIndex(side+1, poly.SideCount()))
	return a, b
}

func MidpointOfSide(poly *Polygon, side int) Point {
	a, b := sideEndpoints(poly, side)
	return a.Midpoint(b)
}

// Perpendicular bisector of a side. The side direction d = B - A is the normal
// of the bisector, which gives the line equation
//
//	d.X*x + d.Y*y - (m.X*d.X + m.Y*d.Y) = 0
//
// for midpoint m. Two points are then sampled from the equation, picking the
// free coordinate so that we never divide by a zero coefficient.
func MediatrixOfSide(poly *Polygon, side int) Line {
	a, b := sideEndpoints(poly, side)
	m := a.Midpoint(b)

	// Perpendicular of the AB vector
	v := Point{-(b.Y - a.Y), b.X - a.X}

	// Coefficients of x, y and the constant term
	cx, cy, c := v.Y, -v.X, (m.Y*v.X)-(m.X*v.Y)

	switch {
	case cx == 0 && cy == 0:
		fatalf(ErrDegenerateGeometry, "side %d has zero length", side)
	case cx == 0: // Vertical side, horizontal bisector
		y := -c / cy
		return Line{Point{MediatrixSampling, y}, Point{-MediatrixSampling, y}}
	case cy == 0: // Horizontal side, vertical bisector
		x := -c / cx
		return Line{Point{x, MediatrixSampling}, Point{x, -MediatrixSampling}}
	}
	return Line{
		Point{-((cy * MediatrixSampling) + c) / cx, MediatrixSampling},
		Point{-((cy * -MediatrixSampling) + c) / cx, -MediatrixSampling},
	}
}

// Altitude of a triangle from the given vertex. With B and C the next two
// vertices in ring order, the second point is A offset along the normal of CB
// by the distance from A to segment CB:
//
//	t = dist(A, CB) / |CB|
//	D = (A.X + (B.Y-C.Y)*t, A.Y - (B.X-C.X)*t)
//
// Which side of A the point D lands on depends on the winding of the triangle,
// but the line through A and D is always the altitude.
func AltitudeFromVertex(poly *Polygon, vertex int) Line {
	if poly.SideCount() != 3 {
		fatalf(ErrNotATriangle, "altitude requested on a figure with %d sides", poly.SideCount())
	}
	a := mustVertexAt(poly, vertex)
	b := mustVertexAt(poly, CircularIndex(vertex+1, 3))
	c := mustVertexAt(poly, CircularIndex(vertex+2, 3))

	base := c.DistanceTo(b)
	if base == 0 {
		fatalf(ErrDegenerateGeometry, "side opposite vertex %d has zero length", vertex)
	}
	t := Line{c, b}.DistanceTo(a) / base
	d := Point{((b.Y - c.Y) * t) + a.X, -((b.X - c.X) * t) + a.Y}
	return Line{a, d}
}

// Orthocenter of a triangle, as the crossing of the altitudes from vertices 0
// and 1.
func Orthocenter(poly *Polygon) Point {
	if poly.SideCount() != 3 {
		fatalf(ErrNotATriangle, "orthocenter requested on a figure with %d sides", poly.SideCount())
	}
	first := AltitudeFromVertex(poly, 0)
	second := AltitudeFromVertex(poly, 1)
	p, err := first.Intersection(second)
	check(err)
	return p
}
