package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIntersection(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		l1 := Line{Point{0, 0}, Point{2, 2}}
		l2 := Line{Point{0, 2}, Point{2, 0}}
		p, err := l1.Intersection(l2)
		require.NoError(t, err)
		assert.InDelta(t, 1, p.X, Tolerance)
		assert.InDelta(t, 1, p.Y, Tolerance)
	})

	t.Run("beyond the segments", func(t *testing.T) {
		// Lines are unbounded, so segments that don't overlap still intersect
		l1 := Line{Point{0, 0}, Point{1, 0}}
		l2 := Line{Point{5, 1}, Point{5, 2}}
		p, err := l1.Intersection(l2)
		require.NoError(t, err)
		assert.InDelta(t, 5, p.X, Tolerance)
		assert.InDelta(t, 0, p.Y, Tolerance)
	})

	t.Run("parallel", func(t *testing.T) {
		l1 := Line{Point{0, 0}, Point{1, 1}}
		l2 := Line{Point{0, 1}, Point{2, 3}}
		_, err := l1.Intersection(l2)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})

	t.Run("zero length", func(t *testing.T) {
		l1 := Line{Point{1, 1}, Point{1, 1}}
		l2 := Line{Point{0, 1}, Point{2, 3}}
		_, err := l1.Intersection(l2)
		assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	})
}

func TestLineDistanceTo(t *testing.T) {
	l := Line{Point{0, 0}, Point{4, 0}}
	assert.InDelta(t, 3, l.DistanceTo(Point{2, 3}), Tolerance, "perpendicular")
	assert.InDelta(t, 3, l.DistanceTo(Point{2, -3}), Tolerance, "other side")
	assert.InDelta(t, 5, l.DistanceTo(Point{-3, 4}), Tolerance, "past the start")
	assert.InDelta(t, 5, l.DistanceTo(Point{7, -4}), Tolerance, "past the end")
	assert.InDelta(t, 0, l.DistanceTo(Point{1, 0}), Tolerance, "on the segment")

	point := Line{Point{1, 1}, Point{1, 1}}
	assert.InDelta(t, math.Sqrt2, point.DistanceTo(Point{2, 2}), Tolerance)
}

func TestLineMeasures(t *testing.T) {
	l := Line{Point{1, 1}, Point{4, 5}}
	assert.Equal(t, Point{3, 4}, l.Direction())
	assert.Equal(t, 5.0, l.Length())
	assert.False(t, l.IsHorizontal())
	assert.False(t, l.IsVertical())
	assert.InDelta(t, 2.5, l.SolveForX(3), Tolerance)

	assert.True(t, Line{Point{0, 2}, Point{5, 2}}.IsHorizontal())
	assert.True(t, Line{Point{2, 0}, Point{2, 5}}.IsVertical())
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "LINESTRING (1 1, 4.2 2.6)", Line{Point{1, 1}, Point{4.2, 2.6}}.String())
}
