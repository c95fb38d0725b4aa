package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalGeoJSON(t *testing.T) {
	data, err := MarshalGeoJSON(Point{1, 2.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[1,2.5]}`, string(data))

	data, err = MarshalGeoJSON(Line{Point{1, 1}, Point{4, 5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[1,1],[4,5]]}`, string(data))

	data, err = MarshalGeoJSON(square())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Polygon","coordinates":[[[0,0],[0,5],[5,5],[5,0],[0,0]]]}`, string(data))
}

func TestUnmarshalGeoJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, name := range convexFixtures {
			poly := LoadFixture(name)
			data, err := MarshalGeoJSON(poly)
			require.NoError(t, err, name)
			decoded, err := UnmarshalPolygonGeoJSON(data)
			require.NoError(t, err, name)
			assert.Equal(t, poly.Vertices(), decoded.Vertices(), name)
		}
	})

	t.Run("point and line", func(t *testing.T) {
		g, err := UnmarshalGeoJSON([]byte(`{"type":"Point","coordinates":[3,2]}`))
		require.NoError(t, err)
		assert.Equal(t, Point{3, 2}, g)

		g, err = UnmarshalGeoJSON([]byte(`{"type":"LineString","coordinates":[[1,1],[4.2,2.6]]}`))
		require.NoError(t, err)
		assert.Equal(t, Line{Point{1, 1}, Point{4.2, 2.6}}, g)
	})

	t.Run("invalid", func(t *testing.T) {
		inputs := []string{
			`not json`,
			`{"type":"Point","coordinates":[1]}`,
			`{"type":"MultiPolygon","coordinates":[]}`,
			`{"type":"LineString","coordinates":[[0,0],[1,1],[2,2]]}`,
			`{"type":"Polygon","coordinates":[[[0,0],[0,5],[5,5],[5,0]]]}`,
			`{"type":"Polygon","coordinates":[[[0,0],[1,1],[0,0]]]}`,
			`{"type":"Polygon","coordinates":[[[0,0],[0,5],[5,5],[0,0]],[[1,1],[1,2],[2,2],[1,1]]]}`,
		}
		for _, input := range inputs {
			_, err := UnmarshalGeoJSON([]byte(input))
			assert.True(t, errors.Is(err, ErrInvalidGeometry), "%s: %v", input, err)
		}

		_, err := UnmarshalPolygonGeoJSON([]byte(`{"type":"Point","coordinates":[3,2]}`))
		assert.True(t, errors.Is(err, ErrInvalidGeometry))
	})
}
