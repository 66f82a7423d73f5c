package dataset

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// LoadShapefile reads a point shapefile into a dataset. Coordinates are taken
// as WGS84 degrees. DBF fields become string attributes; a Plate or ID field
// becomes the record ID, otherwise a UUID is generated. Non-point shapes are
// skipped.
func LoadShapefile(path string) (*Dataset, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	names := make([]string, len(fields))
	idIdx := -1
	for i, f := range fields {
		names[i] = strings.TrimRight(f.String(), "\x00")
		lower := strings.ToLower(names[i])
		if idIdx < 0 && (lower == "plate" || lower == "id") {
			idIdx = i
		}
	}

	var records []Record
	skipped := 0
	for reader.Next() {
		_, shape := reader.Shape()
		pt, ok := shape.(*shp.Point)
		if !ok {
			skipped++
			continue
		}

		id := ""
		if idIdx >= 0 {
			id = strings.TrimSpace(strings.TrimRight(reader.Attribute(idIdx), "\x00"))
		}
		if id == "" {
			id = uuid.NewString()
		}

		attrs := make(map[string]string, len(names))
		for i, name := range names {
			if i == idIdx {
				continue
			}
			attrs[name] = strings.TrimSpace(strings.TrimRight(reader.Attribute(i), "\x00"))
		}

		records = append(records, Record{
			ID:         id,
			Location:   geoprim.NewGeographic(pt.X, pt.Y),
			Attributes: attrs,
		})
	}

	if skipped > 0 {
		zap.L().Debug("dataset: skipped non-point shapes",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return New(records), nil
}
