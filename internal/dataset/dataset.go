// Package dataset models trip-origin records and their ingestion from CSV
// and shapefile sources. Datasets are loaded once and read-only afterwards;
// derived datasets (attribute binning) are new values.
package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// Record is a single trip origin with its location and attributes.
type Record struct {
	ID         string
	Location   geoprim.Point
	Attributes map[string]string
}

// Attr returns the named attribute value, or the empty string if absent.
func (r Record) Attr(name string) string {
	return r.Attributes[name]
}

// Dataset is an ordered, read-only collection of records. Insertion order is
// preserved: it is the tie-break for equal-distance rankings.
type Dataset struct {
	records []Record
}

// New builds a dataset from the given records.
func New(records []Record) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the records in insertion order. The returned slice is
// shared; callers must not modify it.
func (d *Dataset) Records() []Record {
	return d.records
}

// ByID returns the record with the given ID.
func (d *Dataset) ByID(id string) (Record, bool) {
	for _, r := range d.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// BinNumeric derives a categorical attribute from a numeric one by splitting
// its observed range into equal-width bins, the way continuous
// quasi-identifiers are coarsened before a k-anonymity check. The derived
// attribute is named attr + "_group" and holds interval labels. Returns a new
// dataset; the input is unchanged.
func BinNumeric(d *Dataset, attr string, bins int) (*Dataset, error) {
	if bins < 1 {
		return nil, eris.Errorf("dataset: bins must be >= 1, got %d", bins)
	}

	if len(d.records) == 0 {
		return nil, eris.Errorf("dataset: cannot bin attribute %q of an empty dataset", attr)
	}

	values := make([]float64, len(d.records))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, r := range d.records {
		v, err := strconv.ParseFloat(r.Attr(attr), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: record %s attribute %q is not numeric", r.ID, attr)
		}
		values[i] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	width := (hi - lo) / float64(bins)
	out := make([]Record, len(d.records))
	for i, r := range d.records {
		idx := bins - 1
		if width > 0 {
			idx = int((values[i] - lo) / width)
			if idx >= bins {
				idx = bins - 1 // max value lands in the last bin
			}
		}
		// Bins are half-open so adjacent labels never claim the same
		// boundary value; only the last bin closes on the maximum.
		closing := ")"
		if idx == bins-1 {
			closing = "]"
		}
		label := fmt.Sprintf("[%.2f,%.2f%s", lo+float64(idx)*width, lo+float64(idx+1)*width, closing)

		attrs := make(map[string]string, len(r.Attributes)+1)
		for k, v := range r.Attributes {
			attrs[k] = v
		}
		attrs[attr+"_group"] = label
		out[i] = Record{ID: r.ID, Location: r.Location, Attributes: attrs}
	}

	return New(out), nil
}
