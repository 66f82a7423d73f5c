package anonymity

import "github.com/rotisserie/eris"

var (
	// ErrEmptyDataset indicates an operation over a dataset with no records.
	ErrEmptyDataset = eris.New("dataset has no records")

	// ErrInsufficientData indicates fewer records (or predicate matches) than
	// the requested k.
	ErrInsufficientData = eris.New("insufficient records for requested k")

	// ErrInvalidFocalConfig indicates a focal offset outside [1, k]. A focal
	// neighbor beyond k would not be a member of its own anonymity set.
	ErrInvalidFocalConfig = eris.New("focal offset outside [1, k]")
)
