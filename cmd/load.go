package main

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoprivacy/internal/dataset"
)

// loadOrigins reads a trip-origin dataset from a CSV or a point shapefile.
// Exactly one of the two paths must be set.
func loadOrigins(csvPath, shpPath string) (*dataset.Dataset, error) {
	switch {
	case csvPath != "" && shpPath != "":
		return nil, eris.New("load: --csv and --shp are mutually exclusive")
	case csvPath != "":
		return dataset.LoadCSV(csvPath)
	case shpPath != "":
		return dataset.LoadShapefile(shpPath)
	}
	return nil, eris.New("load: one of --csv or --shp is required")
}

// parseAttrFilter parses Name=Value into its parts.
func parseAttrFilter(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" || value == "" {
		return "", "", eris.Errorf("load: attribute filter %q must be Name=Value", s)
	}
	return name, value, nil
}

// parseBinSpec parses Attr:N into an attribute name and bin count.
func parseBinSpec(s string) (attr string, bins int, err error) {
	attr, count, ok := strings.Cut(s, ":")
	if !ok || attr == "" {
		return "", 0, eris.Errorf("load: bin spec %q must be Attr:N", s)
	}
	bins, err = strconv.Atoi(count)
	if err != nil || bins < 1 {
		return "", 0, eris.Errorf("load: bin spec %q has an invalid bin count", s)
	}
	return attr, bins, nil
}
