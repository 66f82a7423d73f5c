package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

// Column names recognized as the record identifier, checked in order.
var idColumns = []string{"plate", "id"}

// LoadCSV reads a trip-origin CSV into a dataset. The header must contain
// Latitude and Longitude columns (case-insensitive); coordinates are taken as
// WGS84 degrees. A Plate or ID column becomes the record ID, otherwise a UUID
// is generated. Every other column is kept as a string attribute under its
// header name. Rows with unparseable coordinates are skipped.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: read %s", path)
	}
	if len(rows) < 1 {
		return nil, eris.Errorf("dataset: %s has no header row", path)
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	latIdx, ok := colIdx["latitude"]
	if !ok {
		return nil, eris.Errorf("dataset: %s has no Latitude column", path)
	}
	lngIdx, ok := colIdx["longitude"]
	if !ok {
		return nil, eris.Errorf("dataset: %s has no Longitude column", path)
	}

	idIdx := -1
	for _, name := range idColumns {
		if i, ok := colIdx[name]; ok {
			idIdx = i
			break
		}
	}

	records := make([]Record, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(row[lngIdx]), 64)
		if latErr != nil || lngErr != nil {
			skipped++
			continue
		}

		id := ""
		if idIdx >= 0 {
			id = strings.TrimSpace(row[idIdx])
		}
		if id == "" {
			id = uuid.NewString()
		}

		attrs := make(map[string]string)
		for i, name := range header {
			if i == latIdx || i == lngIdx || i == idIdx {
				continue
			}
			attrs[strings.TrimSpace(name)] = strings.TrimSpace(row[i])
		}

		records = append(records, Record{
			ID:         id,
			Location:   geoprim.NewGeographic(lng, lat),
			Attributes: attrs,
		})
	}

	if skipped > 0 {
		zap.L().Debug("dataset: skipped rows with bad coordinates",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return New(records), nil
}
