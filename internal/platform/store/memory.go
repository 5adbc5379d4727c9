package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-process Client holding collections as plain row slices.
// It backs the demo seed and every service test, standing in for the hosted
// store with identical filter, search and ordering semantics.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]Row
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]Row{}}
}

// Load replaces the contents of a collection. Intended for seeding fixtures.
func (m *Memory) Load(collection string, rows []Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]Row, 0, len(rows))
	for _, r := range rows {
		cp = append(cp, cloneRow(r))
	}
	m.data[collection] = cp
}

func cloneRow(r Row) Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

// str renders a cell for comparison. The store's filterable columns are all
// text or text-like; numbers format without an exponent for the sizes used
// here.
func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func matches(r Row, q Query) bool {
	for _, f := range q.activeFilters() {
		if str(r[f.Column]) != f.Value {
			return false
		}
	}
	if !q.Search.empty() {
		term := strings.ToLower(q.Search.Term)
		hit := false
		for _, col := range q.Search.Columns {
			if strings.Contains(strings.ToLower(str(r[col])), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func sortRows(rows []Row, order []Order) {
	if len(order) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range order {
			a, b := str(rows[i][o.Column]), str(rows[j][o.Column])
			if a == b {
				continue
			}
			if o.Descending {
				return a > b
			}
			return a < b
		}
		return false
	})
}

func (m *Memory) Select(_ context.Context, q Query) ([]Row, error) {
	if err := validateIdents(q); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Row{}
	for _, r := range m.data[q.Collection] {
		if matches(r, q) {
			out = append(out, cloneRow(r))
		}
	}
	sortRows(out, q.Order)
	return out, nil
}

func (m *Memory) Get(_ context.Context, collection, id string) (Row, error) {
	if err := validateIdents(Query{Collection: collection}); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.data[collection] {
		if str(r["id"]) == id {
			return cloneRow(r), nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", ErrNotFound, collection, id)
}

func (m *Memory) Count(_ context.Context, q Query) (int, error) {
	if err := validateIdents(q); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, r := range m.data[q.Collection] {
		if matches(r, q) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) Insert(_ context.Context, collection string, row Row) (Row, error) {
	if err := validateIdents(Query{Collection: collection}); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := cloneRow(row)
	m.data[collection] = append(m.data[collection], stored)
	return cloneRow(stored), nil
}
