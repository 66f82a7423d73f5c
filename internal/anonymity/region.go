package anonymity

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// RegionMode selects the disclosed region geometry.
type RegionMode string

const (
	// RegionConvexHull discloses the convex hull of the member locations.
	RegionConvexHull RegionMode = "hull"
	// RegionBoundingBox discloses the axis-aligned envelope.
	RegionBoundingBox RegionMode = "bbox"
)

// ParseRegionMode validates a region mode string.
func ParseRegionMode(s string) (RegionMode, error) {
	switch RegionMode(s) {
	case RegionConvexHull, RegionBoundingBox:
		return RegionMode(s), nil
	}
	return "", eris.Errorf("anonymity: unknown region mode %q (want hull or bbox)", s)
}

// ToRegion reduces an anonymity set to a shareable polygon in the members'
// frame. A convex hull over fewer than three distinct (or collinear) member
// locations degenerates; rather than surfacing that, the bounding box is
// returned so callers always get a renderable region for a valid set.
func ToRegion(set *AnonymitySet, mode RegionMode) (*geom.Polygon, error) {
	if set == nil || len(set.Members) == 0 {
		return nil, eris.Wrap(ErrEmptyDataset, "anonymity: region of empty set")
	}

	points := make([]geoprim.Point, len(set.Members))
	for i, m := range set.Members {
		points[i] = m.Location
	}

	switch mode {
	case RegionConvexHull:
		poly, err := geoprim.ConvexHull(points)
		if err == nil {
			return poly, nil
		}
		if !eris.Is(err, geoprim.ErrDegenerateGeometry) {
			return nil, err
		}
		return geoprim.BoundingBox(points)
	case RegionBoundingBox:
		return geoprim.BoundingBox(points)
	}
	return nil, eris.Errorf("anonymity: unknown region mode %q", mode)
}
