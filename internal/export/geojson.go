// Package export encodes privacy outputs as GeoJSON for map-rendering
// collaborators. Geometries are reprojected to WGS84 on the way out, which
// is what GeoJSON consumers expect.
package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// PointFeature returns a GeoJSON point feature for p with the given ID and
// properties.
func PointFeature(id string, p geoprim.Point, props map[string]interface{}) (*geojson.Feature, error) {
	g, err := geoprim.Reproject(p, geoprim.SRIDWGS84)
	if err != nil {
		return nil, eris.Wrapf(err, "export: point feature %s", id)
	}
	return &geojson.Feature{
		ID:         id,
		Geometry:   geom.NewPointFlat(geom.XY, []float64{g.X, g.Y}).SetSRID(geoprim.SRIDWGS84),
		Properties: props,
	}, nil
}

// PolygonFeature returns a GeoJSON polygon feature with the given ID and
// properties.
func PolygonFeature(id string, poly *geom.Polygon, props map[string]interface{}) (*geojson.Feature, error) {
	g, err := geoprim.ReprojectPolygon(poly, geoprim.SRIDWGS84)
	if err != nil {
		return nil, eris.Wrapf(err, "export: polygon feature %s", id)
	}
	return &geojson.Feature{
		ID:         id,
		Geometry:   g,
		Properties: props,
	}, nil
}

// Collection wraps features into a feature collection.
func Collection(features ...*geojson.Feature) *geojson.FeatureCollection {
	return &geojson.FeatureCollection{Features: features}
}

// Write marshals the collection and writes it to path, or to stdout when
// path is empty.
func Write(path string, fc *geojson.FeatureCollection) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal feature collection")
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
