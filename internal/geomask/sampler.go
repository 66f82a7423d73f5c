// Package geomask obfuscates true locations by annulus sampling: replacing
// a point with a randomized nearby point, or with a randomized circle
// guaranteed to contain it.
package geomask

import (
	"math"
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

var (
	// ErrInvalidRadius indicates radii violating 0 <= min < max.
	ErrInvalidRadius = eris.New("radii must satisfy 0 <= min < max")

	// ErrContainmentGuarantee indicates a buffer radius smaller than the
	// maximum displacement, which would allow circles that miss the true
	// point.
	ErrContainmentGuarantee = eris.New("buffer radius smaller than max displacement")
)

// Region is a randomized circular disclosure. Radius is in meters; Center is
// in the true point's original frame.
type Region struct {
	Center geoprim.Point
	Radius float64
}

// Polygon approximates the region as a closed polygon in the center's frame.
func (r *Region) Polygon(segments int) (*geom.Polygon, error) {
	center, err := geoprim.Reproject(r.Center, geoprim.SRIDWebMercator)
	if err != nil {
		return nil, eris.Wrap(err, "geomask: project region center")
	}
	circle := geoprim.Circle(center, r.Radius, segments)
	return geoprim.ReprojectPolygon(circle, r.Center.SRID)
}

// Sampler draws randomized replacement geometries around true points.
// It is not safe for concurrent use; give each goroutine its own.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded from the clock.
func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler returns a sampler with a deterministic source for
// reproducible runs.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// SampleReplacementPoint returns a randomized point between minRadius and
// maxRadius meters of the true point, in the true point's original frame.
// The radius is drawn uniformly from [minRadius, maxRadius) and the angle
// uniformly from [0, 2pi). Radius-uniform sampling is the contract here:
// the resulting density is not uniform over the annulus area, and consumers
// calibrated against the released data depend on that profile.
func (s *Sampler) SampleReplacementPoint(truePoint geoprim.Point, minRadius, maxRadius float64) (geoprim.Point, error) {
	if minRadius < 0 || maxRadius <= 0 || minRadius >= maxRadius {
		return geoprim.Point{}, eris.Wrapf(ErrInvalidRadius, "geomask: min=%g max=%g", minRadius, maxRadius)
	}

	center, err := geoprim.Reproject(truePoint, geoprim.SRIDWebMercator)
	if err != nil {
		return geoprim.Point{}, eris.Wrap(err, "geomask: project true point")
	}

	r := minRadius + (maxRadius-minRadius)*s.rng.Float64()
	theta := 2 * math.Pi * s.rng.Float64()

	masked := geoprim.NewProjected(
		center.X+r*math.Cos(theta),
		center.Y+r*math.Sin(theta),
	)
	out, err := geoprim.Reproject(masked, truePoint.SRID)
	if err != nil {
		return geoprim.Point{}, eris.Wrap(err, "geomask: reproject masked point")
	}
	return out, nil
}

// SampleReplacementRegion returns a circle of bufferRadius meters centered on
// a randomized replacement point. bufferRadius must be at least maxRadius:
// the center is displaced at most maxRadius from the true point, so the
// circle is guaranteed to contain it. The precondition is rejected before any
// sampling happens.
func (s *Sampler) SampleReplacementRegion(truePoint geoprim.Point, minRadius, maxRadius, bufferRadius float64) (*Region, error) {
	if bufferRadius < maxRadius {
		return nil, eris.Wrapf(ErrContainmentGuarantee, "geomask: buffer=%g max=%g", bufferRadius, maxRadius)
	}

	center, err := s.SampleReplacementPoint(truePoint, minRadius, maxRadius)
	if err != nil {
		return nil, err
	}
	return &Region{Center: center, Radius: bufferRadius}, nil
}
