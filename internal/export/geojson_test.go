package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

func TestPointFeature_ReprojectsToWGS84(t *testing.T) {
	p, err := geoprim.Reproject(geoprim.NewGeographic(4.37, 50.83), geoprim.SRIDWebMercator)
	require.NoError(t, err)

	f, err := PointFeature("A1091", p, map[string]interface{}{"gender": "Female"})
	require.NoError(t, err)

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]interface{} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Feature", decoded.Type)
	assert.Equal(t, "Point", decoded.Geometry.Type)
	assert.InDelta(t, 4.37, decoded.Geometry.Coordinates[0], 1e-9)
	assert.InDelta(t, 50.83, decoded.Geometry.Coordinates[1], 1e-9)
	assert.Equal(t, "Female", decoded.Properties["gender"])
}

func TestPolygonFeature_FromProjectedRegion(t *testing.T) {
	box, err := geoprim.BoundingBox([]geoprim.Point{
		geoprim.NewProjected(486000, 6589000),
		geoprim.NewProjected(487000, 6590000),
	})
	require.NoError(t, err)

	f, err := PolygonFeature("region", box, nil)
	require.NoError(t, err)
	assert.Equal(t, geoprim.SRIDWGS84, f.Geometry.SRID())
}

func TestWrite_File(t *testing.T) {
	f, err := PointFeature("a", geoprim.NewGeographic(4.37, 50.83), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.geojson")
	require.NoError(t, Write(path, Collection(f)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "FeatureCollection", decoded.Type)
	assert.Len(t, decoded.Features, 1)
}
