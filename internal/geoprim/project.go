package geoprim

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// earthRadius is the spherical Mercator earth radius in meters.
const earthRadius = 6378137.0

// Reproject returns p expressed in the target frame. Only the WGS84 and
// Web Mercator pair is supported; any other combination fails with
// ErrUnsupportedSRID. Reprojecting into the point's own frame is a no-op.
func Reproject(p Point, srid int) (Point, error) {
	if p.SRID == srid {
		return p, nil
	}
	switch {
	case p.SRID == SRIDWGS84 && srid == SRIDWebMercator:
		x := earthRadius * p.X * math.Pi / 180
		y := earthRadius * math.Log(math.Tan(math.Pi/4+p.Y*math.Pi/360))
		return Point{X: x, Y: y, SRID: srid}, nil
	case p.SRID == SRIDWebMercator && srid == SRIDWGS84:
		lng := p.X / earthRadius * 180 / math.Pi
		lat := (2*math.Atan(math.Exp(p.Y/earthRadius)) - math.Pi/2) * 180 / math.Pi
		return Point{X: lng, Y: lat, SRID: srid}, nil
	}
	return Point{}, eris.Wrapf(ErrUnsupportedSRID, "geoprim: reproject SRID %d to SRID %d", p.SRID, srid)
}

// ReprojectPolygon returns a copy of poly with every vertex reprojected into
// the target frame. The input polygon is not modified.
func ReprojectPolygon(poly *geom.Polygon, srid int) (*geom.Polygon, error) {
	if poly.SRID() == srid {
		return poly, nil
	}

	coords := poly.Coords()
	out := make([][]geom.Coord, len(coords))
	for i, ring := range coords {
		outRing := make([]geom.Coord, len(ring))
		for j, c := range ring {
			p, err := Reproject(Point{X: c[0], Y: c[1], SRID: poly.SRID()}, srid)
			if err != nil {
				return nil, eris.Wrap(err, "geoprim: reproject polygon vertex")
			}
			outRing[j] = geom.Coord{p.X, p.Y}
		}
		out[i] = outRing
	}

	return geom.NewPolygon(geom.XY).MustSetCoords(out).SetSRID(srid), nil
}
