package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWKT(t *testing.T) {
	t.Run("polygon", func(t *testing.T) {
		poly, err := ParsePolygonWKT("POLYGON ((0 0 ,0 5, 5 5, 5 0, 0 0))")
		require.NoError(t, err)
		assert.Equal(t, square().Vertices(), poly.Vertices())
	})

	t.Run("point", func(t *testing.T) {
		p, err := ParsePointWKT("POINT (8.0 1.5)")
		require.NoError(t, err)
		assert.Equal(t, Point{8, 1.5}, p)
	})

	t.Run("line", func(t *testing.T) {
		g, err := ParseWKT("LINESTRING (1 1, 4.2 2.6)")
		require.NoError(t, err)
		assert.Equal(t, Line{Point{1, 1}, Point{4.2, 2.6}}, g)
	})

	t.Run("numbers", func(t *testing.T) {
		p, err := ParsePointWKT("point(-1.5e1 +.25)")
		require.NoError(t, err)
		assert.Equal(t, Point{-15, 0.25}, p)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, name := range convexFixtures {
			poly := LoadFixture(name)
			parsed, err := ParsePolygonWKT(poly.String())
			require.NoError(t, err, name)
			assert.Equal(t, poly.Vertices(), parsed.Vertices(), name)
		}
		p := Point{-0.125, 1e-7}
		parsed, err := ParsePointWKT(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	})
}

func TestParseWKT_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"POLYGON EMPTY",
		"POINT EMPTY",
		"POINT Z (1 2 3)",
		"POINT (1 2) POINT",
		"POINT (1)",
		"POINT (1 2",
		"POINT (a b)",
		"MULTIPOLYGON (((0 0, 0 1, 1 1, 0 0)))",
		"LINESTRING (0 0, 1 1, 2 2)",
		"POLYGON ((0 0, 1 1, 0 0))",
		"POLYGON ((0 0, 0 5, 5 5, 5 0))",
		"POLYGON ((0 0, 0 5, 5 5, 0 0), (1 1, 1 2, 2 2, 1 1))",
		"POLYGON (0 0, 0 5, 5 5, 0 0)",
	}
	for _, input := range inputs {
		_, err := ParseWKT(input)
		assert.True(t, errors.Is(err, ErrInvalidGeometry), "%q: %v", input, err)
	}

	_, err := ParsePolygonWKT("POINT (1 2)")
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
	_, err = ParsePointWKT("POLYGON ((0 0, 0 5, 5 5, 0 0))")
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
}
