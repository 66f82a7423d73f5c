package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "origins.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV_TripOrigins(t *testing.T) {
	path := writeCSV(t, `Plate,Latitude,Longitude,Age,Gender
A1091,50.8342,4.3711,27,Female
B2202,50.8290,4.3650,34,Male
`)

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	r, ok := ds.ByID("A1091")
	require.True(t, ok)
	assert.Equal(t, geoprim.SRIDWGS84, r.Location.SRID)
	assert.InDelta(t, 4.3711, r.Location.X, 1e-9)
	assert.InDelta(t, 50.8342, r.Location.Y, 1e-9)
	assert.Equal(t, "Female", r.Attr("Gender"))
	assert.Equal(t, "27", r.Attr("Age"))

	// Plate is the ID, not an attribute.
	assert.Empty(t, r.Attr("Plate"))
}

func TestLoadCSV_GeneratedIDs(t *testing.T) {
	path := writeCSV(t, `Latitude,Longitude,Gender
50.83,4.37,Female
50.84,4.38,Male
`)

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	a, b := ds.Records()[0], ds.Records()[1]
	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestLoadCSV_SkipsBadCoordinates(t *testing.T) {
	path := writeCSV(t, `Plate,Latitude,Longitude
ok,50.83,4.37
bad,not-a-number,4.38
`)

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestLoadCSV_MissingCoordinateColumn(t *testing.T) {
	path := writeCSV(t, `Plate,Latitude
A,50.83
`)

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Longitude")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
