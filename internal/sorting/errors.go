package sorting

import "errors"

var (
	// ErrNilTable is returned when a nil table is passed to the engine.
	ErrNilTable = errors.New("table is nil")
	// ErrColumnOutOfRange is returned when a column index has no header.
	ErrColumnOutOfRange = errors.New("column index out of range")
	// ErrNotSortable is returned when activating a header that was never attached.
	ErrNotSortable = errors.New("column is not sortable")
)
