package internal

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/pkg/errors"
)

// GeoJSON geometry objects (not features) for points, lines and polygons.

func MarshalGeoJSON(g Geometry) ([]byte, error) {
	var gg geom.Geom
	switch v := g.(type) {
	case Point:
		gg = v.toGeom()
	case Line:
		gg = v.toGeom()
	case *Polygon:
		gg = v.toGeom()
	default:
		return nil, errors.Errorf("geojson: cannot encode %T", g)
	}
	return geojson.Encode(gg)
}

// Decode a Point, two point LineString, or single ring Polygon.
func UnmarshalGeoJSON(data []byte) (Geometry, error) {
	gg, err := geojson.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidGeometry, "geojson: %v", err)
	}
	switch v := gg.(type) {
	case geom.Point:
		return pointFromGeom(v), nil
	case geom.LineString:
		if len(v) != 2 {
			return nil, errors.Wrapf(ErrInvalidGeometry, "geojson: line needs exactly 2 points, got %d", len(v))
		}
		return Line{pointFromGeom(v[0]), pointFromGeom(v[1])}, nil
	case geom.Polygon:
		if len(v) != 1 {
			return nil, errors.Wrapf(ErrInvalidGeometry, "geojson: polygon needs exactly 1 ring, got %d", len(v))
		}
		ring := make([]Point, len(v[0]))
		for i, p := range v[0] {
			ring[i] = pointFromGeom(p)
		}
		poly, err := NewPolygon(ring)
		if err != nil {
			return nil, errors.Wrap(err, "geojson")
		}
		return poly, nil
	default:
		return nil, errors.Wrapf(ErrInvalidGeometry, "geojson: unsupported geometry %T", gg)
	}
}

func UnmarshalPolygonGeoJSON(data []byte) (*Polygon, error) {
	g, err := UnmarshalGeoJSON(data)
	if err != nil {
		return nil, err
	}
	poly, ok := g.(*Polygon)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidGeometry, "geojson: expected Polygon, got %T", g)
	}
	return poly, nil
}
