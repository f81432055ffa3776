// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sorting reorders table rows by the text of a column when its header
// is activated.
//
// The direction record is the marker on the header itself (sort-asc,
// sort-desc or none). Activation toggles relative to the marker the header
// had before the activation; only one header per table carries a marker
// afterwards. Rows are compared as text with locale-aware collation and the
// sort is stable, so rows with equal keys keep their relative order.
package sorting

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Polarity decides how a header without a marker is read by the toggle.
type Polarity int

const (
	// PolarityDocumented reads a clean header as ascending, so the first
	// activation of a header sorts descending.
	PolarityDocumented Polarity = iota
	// PolarityMarker reads the marker literally: only a sort-asc header is
	// ascending, so the first activation sorts ascending.
	PolarityMarker
)

// Engine sorts the tables it was given. It is safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	collator *collate.Collator
	polarity Polarity
	sortable map[*models.Table]map[int]struct{}
	log      *logger.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithPolarity selects how clean headers are read by the toggle.
func WithPolarity(p Polarity) Option {
	return func(e *Engine) { e.polarity = p }
}

// NewEngine creates an engine comparing cell text with the collation rules of
// locale.
func NewEngine(locale language.Tag, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		collator: collate.New(locale),
		sortable: make(map[*models.Table]map[int]struct{}),
		log:      log.ForComponent("sorting"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Attach registers the header at column as sortable.
func (e *Engine) Attach(t *models.Table, column int) error {
	if t == nil {
		return ErrNilTable
	}
	if column < 0 || column >= len(t.Headers) {
		return fmt.Errorf("%w: table %q column %d", ErrColumnOutOfRange, t.ID, column)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	cols, ok := e.sortable[t]
	if !ok {
		cols = make(map[int]struct{})
		e.sortable[t] = cols
	}
	cols[column] = struct{}{}
	t.Headers[column].Sortable = true

	return nil
}

// AttachMarked registers every header already flagged as sortable and returns
// how many were attached.
func (e *Engine) AttachMarked(t *models.Table) (int, error) {
	if t == nil {
		return 0, ErrNilTable
	}

	n := 0
	for i, h := range t.Headers {
		if !h.Sortable {
			continue
		}
		if err := e.Attach(t, i); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Sortable reports whether the header at column was attached.
func (e *Engine) Sortable(t *models.Table, column int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.sortable[t][column]
	return ok
}

// Activate sorts the table body by column, toggling the direction relative to
// the header's current marker, and moves the marker to this header.
func (e *Engine) Activate(t *models.Table, column int) error {
	if t == nil {
		return ErrNilTable
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sortable[t][column]; !ok {
		return fmt.Errorf("%w: table %q column %d", ErrNotSortable, t.ID, column)
	}

	descending := e.readsAscending(t.Headers[column].Direction)

	t.Rows = e.sortRows(t.Rows, column, descending)

	for i := range t.Headers {
		t.Headers[i].Direction = models.SortNone
	}
	if descending {
		t.Headers[column].Direction = models.SortDescending
	} else {
		t.Headers[column].Direction = models.SortAscending
	}

	e.log.Debug().Str("func", "Engine.Activate").
		Str("table", t.ID).
		Int("column", column).
		Str("direction", t.Headers[column].Direction.String()).
		Int("rows", len(t.Rows)).
		Msg("table sorted")

	return nil
}

func (e *Engine) readsAscending(d models.SortDirection) bool {
	if e.polarity == PolarityMarker {
		return d == models.SortAscending
	}
	return d != models.SortDescending
}

type keyedRow struct {
	key string
	row models.Row
}

func (e *Engine) sortRows(rows []models.Row, column int, descending bool) []models.Row {
	if len(rows) == 0 {
		return rows
	}

	keyed := make([]keyedRow, len(rows))
	for i, r := range rows {
		keyed[i] = keyedRow{key: strings.TrimSpace(r.Cell(column)), row: r}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRow) int {
		c := e.collator.CompareString(a.key, b.key)
		if descending {
			return -c
		}
		return c
	})

	out := make([]models.Row, len(keyed))
	for i, k := range keyed {
		out[i] = k.row
	}
	return out
}
