package geoprim

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// defaultCircleSegments is the ring resolution used when Circle is called
// with a non-positive segment count.
const defaultCircleSegments = 64

// ConvexHull returns the convex hull of the points as a closed polygon in
// their shared frame. Fewer than three distinct points, or a fully collinear
// set, fails with ErrDegenerateGeometry; callers wanting a renderable region
// for those inputs should fall back to BoundingBox.
func ConvexHull(points []Point) (*geom.Polygon, error) {
	srid, err := commonFrame(points)
	if err != nil {
		return nil, eris.Wrap(err, "geoprim: convex hull")
	}

	distinct := dedupe(points)
	if len(distinct) < 3 {
		return nil, eris.Wrapf(ErrDegenerateGeometry, "geoprim: convex hull of %d distinct points", len(distinct))
	}

	// Andrew's monotone chain over the distinct points.
	sort.Slice(distinct, func(i, j int) bool {
		if distinct[i].X != distinct[j].X {
			return distinct[i].X < distinct[j].X
		}
		return distinct[i].Y < distinct[j].Y
	})

	var lower, upper []Point
	for _, p := range distinct {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(distinct) - 1; i >= 0; i-- {
		p := distinct[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the duplicated chain endpoints.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, eris.Wrapf(ErrDegenerateGeometry, "geoprim: convex hull of collinear points")
	}

	ring := make([]geom.Coord, 0, len(hull)+1)
	for _, p := range hull {
		ring = append(ring, geom.Coord{p.X, p.Y})
	}
	ring = append(ring, geom.Coord{hull[0].X, hull[0].Y})

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}).SetSRID(srid), nil
}

// BoundingBox returns the axis-aligned envelope of the points as a closed
// polygon in their shared frame. Defined for any non-empty input; a single
// point yields a zero-area polygon.
func BoundingBox(points []Point) (*geom.Polygon, error) {
	srid, err := commonFrame(points)
	if err != nil {
		return nil, eris.Wrap(err, "geoprim: bounding box")
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	ring := []geom.Coord{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
		{minX, minY},
	}
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}).SetSRID(srid), nil
}

// Circle approximates a circle of the given radius around center as a closed
// polygon with the given number of segments. Radius is in the units of the
// center's frame, so centers should normally be projected.
func Circle(center Point, radius float64, segments int) *geom.Polygon {
	if segments <= 0 {
		segments = defaultCircleSegments
	}

	ring := make([]geom.Coord, 0, segments+1)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		ring = append(ring, geom.Coord{
			center.X + radius*math.Cos(theta),
			center.Y + radius*math.Sin(theta),
		})
	}
	ring = append(ring, ring[0])

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}).SetSRID(center.SRID)
}

// commonFrame returns the SRID shared by all points.
func commonFrame(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyGeometry
	}
	srid := points[0].SRID
	for _, p := range points[1:] {
		if p.SRID != srid {
			return 0, eris.Wrapf(ErrProjectionMismatch, "SRID %d and SRID %d", srid, p.SRID)
		}
	}
	return srid, nil
}

// dedupe returns the distinct points, preserving first-seen order.
func dedupe(points []Point) []Point {
	seen := make(map[Point]bool, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// cross returns the z-component of (b-a) x (c-a). Positive means a
// counter-clockwise turn at b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
