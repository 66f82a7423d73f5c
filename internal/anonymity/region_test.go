package anonymity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoprivacy/internal/dataset"
	"github.com/sells-group/geoprivacy/internal/geoprim"
)

func TestToRegion_ConvexHull(t *testing.T) {
	r, err := Rank(tripOrigins(), geoprim.NewProjected(0, 0))
	require.NoError(t, err)
	set, err := SelectAnonymitySet(r, 4, nil)
	require.NoError(t, err)

	poly, err := ToRegion(set, RegionConvexHull)
	require.NoError(t, err)
	assert.Equal(t, geoprim.SRIDWebMercator, poly.SRID())
	assert.Positive(t, poly.Area())
}

func TestToRegion_BoundingBox(t *testing.T) {
	r, err := Rank(tripOrigins(), geoprim.NewProjected(0, 0))
	require.NoError(t, err)
	set, err := SelectAnonymitySet(r, 3, nil)
	require.NoError(t, err)

	poly, err := ToRegion(set, RegionBoundingBox)
	require.NoError(t, err)

	ring := poly.Coords()[0]
	require.Len(t, ring, 5)
	assert.Equal(t, 0.0, ring[0][0])
	assert.Equal(t, 5.0, ring[2][0])
}

func TestToRegion_HullFallsBackToBBox(t *testing.T) {
	// Two members cannot form a hull; the caller still gets a region.
	set := &AnonymitySet{
		Members: []dataset.Record{
			{ID: "a", Location: geoprim.NewProjected(0, 0)},
			{ID: "b", Location: geoprim.NewProjected(10, 10)},
		},
		Reference: geoprim.NewProjected(0, 0),
		Radius:    14.14,
	}

	poly, err := ToRegion(set, RegionConvexHull)
	require.NoError(t, err)
	require.Len(t, poly.Coords()[0], 5)
}

func TestToRegion_EmptySet(t *testing.T) {
	_, err := ToRegion(&AnonymitySet{}, RegionConvexHull)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestToRegion_UnknownMode(t *testing.T) {
	set := &AnonymitySet{Members: []dataset.Record{{ID: "a", Location: geoprim.NewProjected(0, 0)}}}

	_, err := ToRegion(set, RegionMode("octagon"))
	require.Error(t, err)
}

func TestParseRegionMode(t *testing.T) {
	mode, err := ParseRegionMode("hull")
	require.NoError(t, err)
	assert.Equal(t, RegionConvexHull, mode)

	mode, err = ParseRegionMode("bbox")
	require.NoError(t, err)
	assert.Equal(t, RegionBoundingBox, mode)

	_, err = ParseRegionMode("circle")
	require.Error(t, err)
}
