package anonymity

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// OffsetFocus returns the location of the n-th nearest neighbor (1-indexed)
// for use as a re-centered reference point, defending against the attack
// that reads the true individual off the center of the disclosed region.
// n=1 is the true point itself, so callers wanting actual obfuscation pass
// n >= 2. The final selection must use k >= n so the offset point ends up a
// member of its own anonymity set; n outside [1, k] fails with
// ErrInvalidFocalConfig.
func OffsetFocus(r *Ranking, n, k int) (geoprim.Point, error) {
	if n < 1 || n > k {
		return geoprim.Point{}, eris.Wrapf(ErrInvalidFocalConfig, "anonymity: n=%d with k=%d", n, k)
	}
	if len(r.Entries) < n {
		return geoprim.Point{}, eris.Wrapf(ErrInsufficientData, "anonymity: %d records for focal n=%d", len(r.Entries), n)
	}
	return r.Entries[n-1].Record.Location, nil
}
