package anonymity

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprivacy/internal/dataset"
)

// keySep joins quasi-identifier values into a map key. The unit separator
// cannot appear in CSV or DBF attribute values.
const keySep = "\x1f"

// QuasiIdentifierGroup is one equivalence class over the chosen
// quasi-identifiers.
type QuasiIdentifierGroup struct {
	Key   []string `json:"key"`
	Count int      `json:"count"`
}

// CheckKAnonymity groups records by the tuple of the named attribute values
// and returns every group with fewer than k members, sorted by key. An empty
// result means the dataset satisfies k-anonymity for that attribute set.
func CheckKAnonymity(ds *dataset.Dataset, quasiIdentifiers []string, k int) ([]QuasiIdentifierGroup, error) {
	if k < 1 {
		return nil, eris.Errorf("anonymity: k must be >= 1, got %d", k)
	}
	if len(quasiIdentifiers) == 0 {
		return nil, eris.New("anonymity: at least one quasi-identifier is required")
	}
	if ds.Len() == 0 {
		return nil, eris.Wrap(ErrEmptyDataset, "anonymity: check k-anonymity")
	}

	counts := make(map[string]int)
	for _, r := range ds.Records() {
		values := make([]string, len(quasiIdentifiers))
		for i, attr := range quasiIdentifiers {
			values[i] = r.Attr(attr)
		}
		counts[strings.Join(values, keySep)]++
	}

	var violations []QuasiIdentifierGroup
	for key, count := range counts {
		if count < k {
			violations = append(violations, QuasiIdentifierGroup{
				Key:   strings.Split(key, keySep),
				Count: count,
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		return strings.Join(violations[i].Key, keySep) < strings.Join(violations[j].Key, keySep)
	})

	return violations, nil
}
