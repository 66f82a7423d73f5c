// Package anonymity implements spatial k-anonymity over trip-origin
// datasets: distance ranking, minimal anonymity-set selection, focal-point
// offsetting against centroid inference, region aggregation, and a
// non-spatial quasi-identifier checker. All operations are pure functions
// over read-only inputs.
package anonymity

import (
	"runtime"
	"sort"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/geoprivacy/internal/dataset"
	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// RankedEntry pairs a record with its distance to the ranking's reference
// point. Entries are derived per call and never persisted.
type RankedEntry struct {
	Record   dataset.Record
	Distance float64
}

// Ranking is a dataset ordered by ascending distance to a reference point.
// The reference is carried in the projected (Web Mercator) frame.
type Ranking struct {
	Reference geoprim.Point
	Entries   []RankedEntry
}

// Rank orders every record of the dataset by distance to the reference
// point. Geographic inputs are reprojected uniformly into Web Mercator, so
// distances are meters. Records at equal distance keep their dataset order;
// positional selections such as the focal offset depend on that.
func Rank(ds *dataset.Dataset, reference geoprim.Point) (*Ranking, error) {
	records := ds.Records()
	if len(records) == 0 {
		return nil, eris.Wrap(ErrEmptyDataset, "anonymity: rank")
	}

	ref, err := geoprim.Reproject(reference, geoprim.SRIDWebMercator)
	if err != nil {
		return nil, eris.Wrap(err, "anonymity: rank reference")
	}

	// Distances are independent per record; fan out and write by index so
	// the pre-sort order never depends on goroutine scheduling.
	entries := make([]RankedEntry, len(records))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			loc, err := geoprim.Reproject(rec.Location, geoprim.SRIDWebMercator)
			if err != nil {
				return eris.Wrapf(err, "anonymity: rank record %s", rec.ID)
			}
			d, err := geoprim.Distance(ref, loc)
			if err != nil {
				return eris.Wrapf(err, "anonymity: rank record %s", rec.ID)
			}
			entries[i] = RankedEntry{Record: rec, Distance: d}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Distance < entries[j].Distance
	})

	return &Ranking{Reference: ref, Entries: entries}, nil
}
