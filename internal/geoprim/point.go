// Package geoprim provides point, distance, and region primitives over
// projected coordinate frames. All functions are pure: inputs are never
// mutated and a point in a different frame is a distinct value produced
// by Reproject.
package geoprim

import (
	"math"

	"github.com/rotisserie/eris"
)

// Supported spatial reference identifiers.
const (
	// SRIDWGS84 is geographic longitude/latitude in degrees (EPSG:4326).
	SRIDWGS84 = 4326
	// SRIDWebMercator is spherical Mercator easting/northing in meters (EPSG:3857).
	SRIDWebMercator = 3857
)

// Point is an immutable coordinate pair in a declared reference frame.
// X is longitude or easting, Y is latitude or northing.
type Point struct {
	X    float64
	Y    float64
	SRID int
}

// NewGeographic returns a WGS84 point from longitude and latitude degrees.
func NewGeographic(lng, lat float64) Point {
	return Point{X: lng, Y: lat, SRID: SRIDWGS84}
}

// NewProjected returns a Web Mercator point from easting and northing meters.
func NewProjected(x, y float64) Point {
	return Point{X: x, Y: y, SRID: SRIDWebMercator}
}

// Geographic reports whether the point is in a geographic (degree) frame.
func (p Point) Geographic() bool {
	return p.SRID == SRIDWGS84
}

// Distance returns the Euclidean distance between two points in their shared
// projected frame. Both points must carry the same SRID, and that frame must
// be metric: geographic (degree) inputs fail with ErrUnprojected.
func Distance(a, b Point) (float64, error) {
	if a.SRID != b.SRID {
		return 0, eris.Wrapf(ErrProjectionMismatch, "geoprim: distance between SRID %d and SRID %d", a.SRID, b.SRID)
	}
	if a.Geographic() {
		return 0, eris.Wrap(ErrUnprojected, "geoprim: distance in a geographic frame")
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y), nil
}
