package internal

import (
	"math"
	"strconv"
)

const Tolerance = 1e-9

// Tolerance based float comparison. Point equality is always exact, so this is
// only for callers comparing derived measures such as areas or constructed
// points.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Vertices of a ring are addressed as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
