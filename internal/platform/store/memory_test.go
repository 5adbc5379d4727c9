package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func seededMemory() *Memory {
	m := NewMemory()
	m.Load("patients", []Row{
		{"id": "P003", "name": "Carol Mwangi", "primary_doctor_id": "D002"},
		{"id": "P001", "name": "Alice Borland", "primary_doctor_id": "D001"},
		{"id": "P002", "name": "Bob Ashdown", "primary_doctor_id": "D001"},
	})
	m.Load("appointments", []Row{
		{"id": "A1", "date": "2025-03-02", "time": "09:00", "status": "Scheduled"},
		{"id": "A2", "date": "2025-03-01", "time": "14:00", "status": "Scheduled"},
		{"id": "A3", "date": "2025-03-01", "time": "08:30", "status": "Completed"},
	})
	return m
}

func ids(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r["id"].(string))
	}
	return out
}

func TestMemory_SelectFilterAndOrder(t *testing.T) {
	m := seededMemory()
	rows, err := m.Select(context.Background(), Query{
		Collection: "patients",
		Filters:    []Filter{{Column: "primary_doctor_id", Value: "D001"}},
		Order:      []Order{{Column: "name"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ids(rows), []string{"P001", "P002"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMemory_EmptyFilterValueReturnsAll(t *testing.T) {
	m := seededMemory()
	rows, err := m.Select(context.Background(), Query{
		Collection: "patients",
		Filters:    []Filter{{Column: "primary_doctor_id", Value: ""}},
		Order:      []Order{{Column: "id"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected all 3 rows for empty filter value, got %d", len(rows))
	}
}

func TestMemory_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	m := seededMemory()
	rows, err := m.Select(context.Background(), Query{
		Collection: "patients",
		Search:     Search{Term: "bOr", Columns: []string{"name", "id"}},
		Order:      []Order{{Column: "name"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ids(rows), []string{"P001"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Empty term matches everything.
	rows, err = m.Select(context.Background(), Query{
		Collection: "patients",
		Search:     Search{Term: "", Columns: []string{"name", "id"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected empty term to match all rows, got %d", len(rows))
	}
}

func TestMemory_SearchMatchesAnyListedColumn(t *testing.T) {
	m := seededMemory()
	rows, err := m.Select(context.Background(), Query{
		Collection: "patients",
		Search:     Search{Term: "p00", Columns: []string{"name", "id"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected id column matches for all rows, got %d", len(rows))
	}
}

func TestMemory_CompoundOrderBreaksSameDayTies(t *testing.T) {
	m := seededMemory()
	rows, err := m.Select(context.Background(), Query{
		Collection: "appointments",
		Order:      []Order{{Column: "date"}, {Column: "time"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ids(rows), []string{"A3", "A2", "A1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	rows, err = m.Select(context.Background(), Query{
		Collection: "appointments",
		Order:      []Order{{Column: "date", Descending: true}, {Column: "time", Descending: true}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := ids(rows), []string{"A1", "A2", "A3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMemory_SelectIsIdempotent(t *testing.T) {
	m := seededMemory()
	q := Query{
		Collection: "appointments",
		Filters:    []Filter{{Column: "status", Value: "Scheduled"}},
		Order:      []Order{{Column: "date"}, {Column: "time"}},
	}
	first, err := m.Select(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Select(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("repeated query changed order: %v vs %v", ids(first), ids(second))
	}
}

func TestMemory_GetDistinguishesNotFound(t *testing.T) {
	m := seededMemory()
	if _, err := m.Get(context.Background(), "patients", "P001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := m.Get(context.Background(), "patients", "P999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_CountWithoutBodies(t *testing.T) {
	m := seededMemory()
	n, err := m.Count(context.Background(), Query{
		Collection: "appointments",
		Filters:    []Filter{{Column: "status", Value: "Scheduled"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestMemory_InsertThenSelectSeesRow(t *testing.T) {
	m := seededMemory()
	_, err := m.Insert(context.Background(), "patients", Row{"id": "P004", "name": "Zara Quayle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := m.Select(context.Background(), Query{Collection: "patients", Order: []Order{{Column: "name"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(rows); got[len(got)-1] != "P004" {
		t.Errorf("expected inserted row last by name, got %v", got)
	}
}

func TestMemory_RejectsInvalidIdentifiers(t *testing.T) {
	m := seededMemory()
	_, err := m.Select(context.Background(), Query{Collection: "patients; DROP TABLE"})
	if err == nil {
		t.Error("expected error for invalid collection name")
	}
	_, err = m.Select(context.Background(), Query{
		Collection: "patients",
		Filters:    []Filter{{Column: "name = 'x' OR", Value: "y"}},
	})
	if err == nil {
		t.Error("expected error for invalid column name")
	}
}
