package dataset

import (
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePointShapefile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "origins.shp")

	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{
		shp.StringField("PLATE", 16),
		shp.StringField("GENDER", 8),
	}))

	points := []struct {
		x, y          float64
		plate, gender string
	}{
		{4.3711, 50.8342, "A1091", "Female"},
		{4.3650, 50.8290, "B2202", "Male"},
	}
	for i, p := range points {
		w.Write(&shp.Point{X: p.x, Y: p.y})
		require.NoError(t, w.WriteAttribute(i, 0, p.plate))
		require.NoError(t, w.WriteAttribute(i, 1, p.gender))
	}
	w.Close()

	return path
}

func TestLoadShapefile_Points(t *testing.T) {
	path := writePointShapefile(t)

	ds, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	r, ok := ds.ByID("A1091")
	require.True(t, ok)
	assert.InDelta(t, 4.3711, r.Location.X, 1e-6)
	assert.InDelta(t, 50.8342, r.Location.Y, 1e-6)
	assert.Equal(t, "Female", r.Attr("GENDER"))
}

func TestLoadShapefile_MissingFile(t *testing.T) {
	_, err := LoadShapefile(filepath.Join(t.TempDir(), "nope.shp"))
	require.Error(t, err)
}
