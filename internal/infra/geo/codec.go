// Package geo implements the geometry handling behind territories: GeoJSON
// decoding with degenerate-ring filtering, the lat/lng editable representation
// used by map editors, point-in-polygon matching and pairwise overlap
// detection. Persisted geometry is longitude-first; editable geometry is
// latitude-first. All functions are pure and operate on in-memory snapshots.
package geo

import (
	"encoding/json"
	"math"

	"atlas/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LatLng is a latitude-first coordinate as used by map editors.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EditablePolygon is one polygon in editor form: a list of rings in
// latitude-first order. The first ring is the outer boundary, any
// following rings are holes.
type EditablePolygon [][]LatLng

// geoJSONEnvelope peeks at the type tag so the decoder can dispatch
// between the three accepted document shapes.
type geoJSONEnvelope struct {
	Type string `json:"type"`
}

// DecodeGeoJSON parses a GeoJSON document holding territory geometry.
// Accepted shapes are Polygon, MultiPolygon, Feature and FeatureCollection;
// features are unwrapped recursively into their polygons. Rings that end up
// with fewer than three distinct valid points are dropped, as are polygons
// left without rings; the second return value counts the dropped rings so
// callers can log the condition. An error is returned only when the document
// itself cannot be parsed or carries an unsupported geometry type.
func DecodeGeoJSON(data []byte) (orb.MultiPolygon, int, error) {
	var envelope geoJSONEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, 0, errors.Wrap(err, "parse geojson document")
	}

	var collected orb.MultiPolygon
	switch envelope.Type {
	case "Polygon", "MultiPolygon":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, 0, errors.Wrap(err, "parse geojson geometry")
		}
		collected = appendGeometry(collected, g.Geometry())

	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, 0, errors.Wrap(err, "parse geojson feature")
		}
		collected = appendGeometry(collected, feature.Geometry)

	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, 0, errors.Wrap(err, "parse geojson feature collection")
		}
		for _, feature := range fc.Features {
			if feature == nil {
				continue
			}
			collected = appendGeometry(collected, feature.Geometry)
		}

	default:
		return nil, 0, errors.Errorf("unsupported geojson type: %q", envelope.Type)
	}

	sanitized, dropped := sanitizeMultiPolygon(collected)

	return sanitized, dropped, nil
}

// EncodeGeoJSON serializes geometry into its canonical persisted form,
// a GeoJSON MultiPolygon geometry object.
func EncodeGeoJSON(mp orb.MultiPolygon) ([]byte, error) {
	data, err := geojson.NewGeometry(mp).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "encode geojson geometry")
	}

	return data, nil
}

// ToEditable converts persisted lon/lat geometry into the latitude-first
// editor representation. Ring contents are carried over verbatim apart
// from the axis swap, so closed rings stay closed.
func ToEditable(mp orb.MultiPolygon) []EditablePolygon {
	editable := make([]EditablePolygon, 0, len(mp))
	for _, polygon := range mp {
		rings := make(EditablePolygon, 0, len(polygon))
		for _, ring := range polygon {
			points := make([]LatLng, 0, len(ring))
			for _, pt := range ring {
				points = append(points, LatLng{Lat: pt.Lat(), Lng: pt.Lon()})
			}
			rings = append(rings, points)
		}
		editable = append(editable, rings)
	}

	return editable
}

// FromEditable converts editor geometry back into persisted lon/lat form.
// Points with non-finite coordinates are filtered out, rings left with fewer
// than three distinct points are dropped and open rings are closed. The
// second return value counts the dropped rings.
func FromEditable(polygons []EditablePolygon) (orb.MultiPolygon, int) {
	var mp orb.MultiPolygon
	for _, editable := range polygons {
		polygon := make(orb.Polygon, 0, len(editable))
		for _, points := range editable {
			ring := make(orb.Ring, 0, len(points))
			for _, p := range points {
				ring = append(ring, orb.Point{p.Lng, p.Lat})
			}
			polygon = append(polygon, ring)
		}
		mp = append(mp, polygon)
	}

	return sanitizeMultiPolygon(mp)
}

// appendGeometry flattens a decoded geometry into the polygon accumulator.
// Non-areal geometry types are skipped.
func appendGeometry(mp orb.MultiPolygon, g orb.Geometry) orb.MultiPolygon {
	switch geom := g.(type) {
	case orb.Polygon:
		return append(mp, geom)
	case orb.MultiPolygon:
		return append(mp, geom...)
	case orb.Collection:
		for _, member := range geom {
			mp = appendGeometry(mp, member)
		}

		return mp
	default:
		return mp
	}
}

// sanitizeMultiPolygon filters out invalid points and degenerate rings and
// closes any ring that does not end on its first point. Polygons whose outer
// ring was dropped are removed entirely.
func sanitizeMultiPolygon(mp orb.MultiPolygon) (orb.MultiPolygon, int) {
	var sanitized orb.MultiPolygon
	dropped := 0

	for _, polygon := range mp {
		cleaned := make(orb.Polygon, 0, len(polygon))
		outerDropped := false
		for i, ring := range polygon {
			valid := sanitizeRing(ring)
			if valid == nil {
				dropped++
				if i == 0 {
					outerDropped = true

					break
				}

				continue
			}
			cleaned = append(cleaned, valid)
		}

		if outerDropped {
			// Holes without an outer boundary are meaningless.
			dropped += len(polygon) - 1

			continue
		}
		if len(cleaned) == 0 {
			continue
		}
		sanitized = append(sanitized, cleaned)
	}

	return sanitized, dropped
}

// sanitizeRing drops non-finite points, closes the ring and returns nil
// when fewer than three distinct points remain.
func sanitizeRing(ring orb.Ring) orb.Ring {
	valid := make(orb.Ring, 0, len(ring))
	for _, pt := range ring {
		if !finite(pt[0]) || !finite(pt[1]) {
			continue
		}
		valid = append(valid, pt)
	}

	if len(valid) == 0 {
		return nil
	}

	distinct := make(map[orb.Point]struct{}, len(valid))
	for _, pt := range valid {
		distinct[pt] = struct{}{}
	}
	if len(distinct) < 3 {
		return nil
	}

	if valid[0] != valid[len(valid)-1] {
		valid = append(valid, valid[0])
	}

	return valid
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
