// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortDirection is the direction marker a sortable header carries.
type SortDirection int

const (
	// SortNone means the header carries no marker.
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// String returns the marker name used when rendering headers.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "sort-asc"
	case SortDescending:
		return "sort-desc"
	default:
		return ""
	}
}

// Header is a column header. Its column index is its position in Table.Headers.
type Header struct {
	Label     string
	Sortable  bool
	Direction SortDirection
}

// Row is one body row. Key identifies the row independently of its position.
type Row struct {
	Key   string
	Cells []string
}

// Cell returns the text of the cell at column, or "" when the row is shorter.
func (r Row) Cell(column int) string {
	if column < 0 || column >= len(r.Cells) {
		return ""
	}
	return r.Cells[column]
}

// Table is a header row plus a body section of rows that may be reordered.
type Table struct {
	ID      string
	Headers []Header
	Rows    []Row
}

// ActiveColumn returns the index of the header holding a direction marker.
func (t *Table) ActiveColumn() (int, bool) {
	for i, h := range t.Headers {
		if h.Direction != SortNone {
			return i, true
		}
	}
	return -1, false
}
