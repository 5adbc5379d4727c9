// Package store is the boundary to the external tabular store. Every entity
// collection is reached through the same generic client: scoped selects with
// equality and substring predicates, single-row lookups by primary key,
// body-less counts, and single-row inserts. Three drivers implement the
// client: a PostgREST-speaking HTTP driver, a pgx-backed Postgres driver, and
// an in-memory driver used by tests and the demo seed.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound reports that a get-by-id lookup matched no row. Callers
	// must be able to tell this apart from the store being unreachable.
	ErrNotFound = errors.New("store: row not found")

	// ErrUnavailable reports a transport-level failure: the store could not
	// be reached or answered with an error envelope.
	ErrUnavailable = errors.New("store: unavailable")
)

// Row is one record as the store returns it, keyed by column name.
type Row map[string]any

// Filter is an equality predicate on a single column. A Filter with an empty
// Value is dropped rather than matching nothing; multiple filters combine
// with AND.
type Filter struct {
	Column string
	Value  string
}

// Search is a case-insensitive substring predicate applied across one or
// more text columns, combined with OR. An empty Term matches everything.
type Search struct {
	Term    string
	Columns []string
}

func (s Search) empty() bool {
	return s.Term == "" || len(s.Columns) == 0
}

// Order is one sort key. Multiple keys form a compound sort applied in the
// listed sequence.
type Order struct {
	Column     string
	Descending bool
}

// Query describes a scoped read against one named collection.
type Query struct {
	Collection string
	Filters    []Filter
	Search     Search
	Order      []Order
}

// activeFilters returns the filters that carry a value.
func (q Query) activeFilters() []Filter {
	out := q.Filters[:0:0]
	for _, f := range q.Filters {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}

// Client is the request/response surface of the external store.
type Client interface {
	// Select fetches all rows matching the query, in the query's order.
	// No matches is an empty slice, not an error.
	Select(ctx context.Context, q Query) ([]Row, error)
	// Get fetches exactly one row by primary key. Returns ErrNotFound when
	// no row has that id.
	Get(ctx context.Context, collection, id string) (Row, error)
	// Count returns the number of rows matching the query without
	// transferring row bodies.
	Count(ctx context.Context, q Query) (int, error)
	// Insert persists one new row and returns it as stored.
	Insert(ctx context.Context, collection string, row Row) (Row, error)
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validateIdents rejects collection and column names outside the closed
// lower_snake_case set, keeping caller-supplied strings out of generated SQL
// and request paths.
func validateIdents(q Query) error {
	names := []string{q.Collection}
	for _, f := range q.activeFilters() {
		names = append(names, f.Column)
	}
	if !q.Search.empty() {
		names = append(names, q.Search.Columns...)
	}
	for _, o := range q.Order {
		names = append(names, o.Column)
	}
	for _, n := range names {
		if !identPattern.MatchString(n) {
			return fmt.Errorf("store: invalid identifier %q", n)
		}
	}
	return nil
}

// Decode unmarshals a slice of rows into a typed destination slice.
func Decode(rows []Row, dst any) error {
	b, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("store: encode rows: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("store: decode rows: %w", err)
	}
	return nil
}

// DecodeRow unmarshals a single row into a typed destination.
func DecodeRow(row Row, dst any) error {
	b, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("store: encode row: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("store: decode row: %w", err)
	}
	return nil
}

// Encode converts a typed entity into a Row via its JSON representation.
func Encode(v any) (Row, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("store: encode entity: %w", err)
	}
	var row Row
	if err := json.Unmarshal(b, &row); err != nil {
		return nil, fmt.Errorf("store: encode entity: %w", err)
	}
	return row, nil
}
