package geoprim

import "github.com/rotisserie/eris"

var (
	// ErrProjectionMismatch indicates an operation over points in different
	// reference frames.
	ErrProjectionMismatch = eris.New("points are in different reference frames")

	// ErrUnprojected indicates a metric operation over points in a
	// geographic frame. Degrees are not a metric space; callers must
	// Reproject first.
	ErrUnprojected = eris.New("operation requires a projected metric frame")

	// ErrUnsupportedSRID indicates a reprojection outside the WGS84 / Web
	// Mercator pair this package supports.
	ErrUnsupportedSRID = eris.New("unsupported SRID")

	// ErrDegenerateGeometry indicates a convex hull request over fewer than
	// three distinct, non-collinear points.
	ErrDegenerateGeometry = eris.New("degenerate geometry")

	// ErrEmptyGeometry indicates a region request over zero points.
	ErrEmptyGeometry = eris.New("no points")
)
