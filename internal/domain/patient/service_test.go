package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medidesk/medidesk/internal/platform/store"
)

func seedRow(id, name, doctorID string) store.Row {
	return store.Row{
		"id": id, "name": name, "age": 40, "gender": "Female",
		"blood_type": "O+", "last_visit": "2025-01-10", "status": "Stable",
		"image_url": "https://example.test/p.jpg", "phone": "555-0100",
		"email": "p@example.test", "address": "1 Main St",
		"emergency_contact":   map[string]any{"name": "Kin", "relationship": "Sibling", "phone": "555-0101"},
		"allergies":           []any{}, "chronic_conditions": []any{},
		"current_medications": []any{}, "medical_history": []any{}, "lab_results": []any{},
		"primary_doctor_id": doctorID,
	}
}

func testService() (*Service, *store.Memory) {
	mem := store.NewMemory()
	mem.Load("patients", []store.Row{
		seedRow("P002", "Brian Okoye", "D002"),
		seedRow("P001", "Alice Borland", "D001"),
		seedRow("P003", "Cora Borland", "D001"),
	})
	mem.Load("medical_history", []store.Row{
		{"id": "H2", "patient_id": "P001", "date": "2024-06-01", "event": "Follow-up", "details": "BP check", "doctor": "Dr. Evelyn Reed"},
		{"id": "H1", "patient_id": "P001", "date": "2023-01-15", "event": "Diagnosis", "details": "Hypertension", "doctor": "Dr. Evelyn Reed"},
		{"id": "H3", "patient_id": "P002", "date": "2024-02-02", "event": "Fracture", "details": "Left radius", "doctor": "Dr. Ben Carter"},
	})
	mem.Load("lab_results", []store.Row{
		{"id": "L1", "patient_id": "P001", "date": "2024-05-01", "test_name": "Lipid Panel", "result": "190 mg/dL", "reference_range": "<200 mg/dL", "status": "Normal"},
		{"id": "L2", "patient_id": "P001", "date": "2024-06-01", "test_name": "A1C", "result": "6.9%", "reference_range": "<5.7%", "status": "Abnormal"},
	})
	return NewService(NewStoreRepo(mem)), mem
}

func TestService_ListScopedByPrimaryDoctor(t *testing.T) {
	svc, _ := testService()
	patients, err := svc.List(context.Background(), ListParams{PrimaryDoctorID: "D001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 patients for D001, got %d", len(patients))
	}
	if patients[0].Name != "Alice Borland" || patients[1].Name != "Cora Borland" {
		t.Errorf("expected name order, got [%s %s]", patients[0].Name, patients[1].Name)
	}
}

func TestService_ListSearchCombinesWithScope(t *testing.T) {
	svc, _ := testService()
	// Doctor scope AND search term.
	patients, err := svc.List(context.Background(), ListParams{PrimaryDoctorID: "D001", Search: "cora"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 || patients[0].ID != "P003" {
		t.Errorf("expected only P003, got %v", patients)
	}

	// Search also matches the id column.
	patients, err = svc.List(context.Background(), ListParams{Search: "p002"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 || patients[0].ID != "P002" {
		t.Errorf("expected only P002, got %v", patients)
	}

	// Empty search returns the whole scope.
	patients, err = svc.List(context.Background(), ListParams{Search: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 3 {
		t.Errorf("expected all 3 patients, got %d", len(patients))
	}
}

func TestService_GetNotFound(t *testing.T) {
	svc, _ := testService()
	_, err := svc.Get(context.Background(), "P999")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_HistoryChronologicalAndScoped(t *testing.T) {
	svc, _ := testService()
	events, err := svc.History(context.Background(), "P001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for P001, got %d", len(events))
	}
	if events[0].ID != "H1" || events[1].ID != "H2" {
		t.Errorf("expected chronological order [H1 H2], got [%s %s]", events[0].ID, events[1].ID)
	}
	for _, e := range events {
		if e.PatientID != "P001" {
			t.Errorf("event %s leaked from another patient", e.ID)
		}
	}
}

func TestService_LabsNewestFirst(t *testing.T) {
	svc, _ := testService()
	labs, err := svc.Labs(context.Background(), "P001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labs) != 2 {
		t.Fatalf("expected 2 lab results, got %d", len(labs))
	}
	if labs[0].ID != "L2" {
		t.Errorf("expected newest lab first, got %s", labs[0].ID)
	}
}

func TestService_LabsEmptyForUnknownPatientIsNotAnError(t *testing.T) {
	svc, _ := testService()
	labs, err := svc.Labs(context.Background(), "P999")
	if err != nil {
		t.Fatalf("absence of rows must not be an error, got %v", err)
	}
	if len(labs) != 0 {
		t.Errorf("expected no labs, got %d", len(labs))
	}
}

func TestService_CreateAppliesSystemDefaults(t *testing.T) {
	svc, _ := testService()
	p, err := svc.Create(context.Background(), CreateInput{
		Name: "Dana Whitfield", Age: 29, Gender: "Female",
		BloodType: "A-", PrimaryDoctorID: "D001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusStable {
		t.Errorf("expected default status Stable, got %q", p.Status)
	}
	if p.ImageURL == "" {
		t.Error("expected a generated image_url")
	}
	if p.LastVisit != time.Now().Format("2006-01-02") {
		t.Errorf("expected last_visit stamped today, got %q", p.LastVisit)
	}
	if p.Allergies == nil || p.CurrentMedications == nil {
		t.Error("expected empty child lists, not nil")
	}
}

func TestService_CreateValidatesBeforeStoreCall(t *testing.T) {
	svc, mem := testService()
	for _, in := range []CreateInput{
		{Age: 20, Gender: "Male"},                            // missing name
		{Name: "X", Age: -1, Gender: "Male"},                 // negative age
		{Name: "X", Age: 20, Gender: "Unknown"},              // bad gender
	} {
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("expected validation error for %+v", in)
		}
	}
	n, _ := mem.Count(context.Background(), store.Query{Collection: "patients"})
	if n != 3 {
		t.Errorf("expected store untouched with 3 rows, got %d", n)
	}
}
