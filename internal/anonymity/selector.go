package anonymity

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprivacy/internal/dataset"
	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// Predicate filters records by an adversary-known attribute.
type Predicate func(dataset.Record) bool

// AttributeEquals returns a predicate matching records whose named attribute
// equals the given value.
func AttributeEquals(name, value string) Predicate {
	return func(r dataset.Record) bool {
		return r.Attr(name) == value
	}
}

// AnonymitySet is the smallest nearest-neighbor prefix of a ranking that
// makes at least k individuals indistinguishable. Every member lies within
// Radius of Reference; Radius is the distance of the farthest member.
type AnonymitySet struct {
	Members   []dataset.Record
	Reference geoprim.Point
	Radius    float64
}

// SelectAnonymitySet returns the minimal ranking prefix satisfying
// k-anonymity. Without a predicate that is exactly the first k entries. With
// a predicate the prefix runs up to and including the k-th matching entry:
// non-matching records along the way stay included, because carving them out
// of the middle of a nearest-neighbor region would itself leak information.
func SelectAnonymitySet(r *Ranking, k int, pred Predicate) (*AnonymitySet, error) {
	if k < 1 {
		return nil, eris.Errorf("anonymity: k must be >= 1, got %d", k)
	}

	cut := 0
	if pred == nil {
		if len(r.Entries) < k {
			return nil, eris.Wrapf(ErrInsufficientData, "anonymity: %d records for k=%d", len(r.Entries), k)
		}
		cut = k
	} else {
		matches := 0
		for i, e := range r.Entries {
			if pred(e.Record) {
				matches++
			}
			if matches == k {
				cut = i + 1
				break
			}
		}
		if cut == 0 {
			return nil, eris.Wrapf(ErrInsufficientData, "anonymity: %d matching records for k=%d", matches, k)
		}
	}

	members := make([]dataset.Record, cut)
	for i, e := range r.Entries[:cut] {
		members[i] = e.Record
	}

	return &AnonymitySet{
		Members:   members,
		Reference: r.Reference,
		Radius:    r.Entries[cut-1].Distance,
	}, nil
}
