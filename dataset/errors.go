package dataset

import "errors"

var (
	// ErrOutOfRange is the panic value (wrapped) for row or column indexes
	// outside the dataset.
	ErrOutOfRange = errors.New("dataset: index out of range")

	// ErrRowLength is returned by AppendRow when the number of values differs
	// from the number of columns.
	ErrRowLength = errors.New("dataset: row length does not match column count")
)
