package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/patient"
	"github.com/medidesk/medidesk/internal/domain/pharmacy"
	"github.com/medidesk/medidesk/internal/platform/store"
)

func testStore() *store.Memory {
	mem := store.NewMemory()
	mem.Load("patients", []store.Row{
		{
			"id": "P001", "name": "Alice Borland", "age": 40, "gender": "Female",
			"blood_type": "O+", "last_visit": "2025-01-10", "status": "Stable",
			"image_url": "https://example.test/p.jpg", "phone": "555-0100",
			"email": "p@example.test", "address": "1 Main St",
			"emergency_contact":   map[string]any{"name": "Kin", "relationship": "Sibling", "phone": "555-0101"},
			"allergies":           []any{"Penicillin"}, "chronic_conditions": []any{},
			"current_medications": []any{}, "medical_history": []any{}, "lab_results": []any{},
			"primary_doctor_id": "D001",
		},
	})
	mem.Load("doctors", []store.Row{
		{"id": "D001", "name": "Dr. Ben Carter", "specialty": "Cardiology", "status": "Available", "image_url": "https://example.test/d.jpg"},
	})
	mem.Load("medical_history", []store.Row{
		{"id": "H1", "patient_id": "P001", "date": "2023-01-15", "event": "Diagnosis", "details": "Hypertension", "doctor": "Dr. Evelyn Reed"},
		{"id": "H2", "patient_id": "P001", "date": "2024-06-01", "event": "Follow-up", "details": "BP check", "doctor": "Dr. Evelyn Reed"},
	})
	mem.Load("lab_results", []store.Row{
		{"id": "L1", "patient_id": "P001", "date": "2024-05-01", "test_name": "Lipid Panel", "result": "190 mg/dL", "reference_range": "<200 mg/dL", "status": "Normal"},
	})
	mem.Load("prescriptions", []store.Row{
		{"id": "RX1", "patient_id": "P001", "medication": "Lisinopril", "dosage": "10mg", "frequency": "Once daily", "start_date": "2024-01-10", "end_date": "2025-01-10"},
	})
	return mem
}

func testResolver(mem *store.Memory) *Resolver {
	return NewResolver(
		patient.NewService(patient.NewStoreRepo(mem)),
		doctor.NewService(doctor.NewStoreRepo(mem)),
		pharmacy.NewService(pharmacy.NewStoreRepo(mem)),
	)
}

func TestResolver_Admin(t *testing.T) {
	r := testResolver(testStore())
	user, err := r.Resolve(context.Background(), RoleAdmin, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Dr. Evelyn Reed" || user.Role != RoleAdmin {
		t.Errorf("unexpected admin identity: %+v", user)
	}
	if user.Doctor != nil || user.Patient != nil {
		t.Error("admin must carry no entity record")
	}
}

func TestResolver_Doctor(t *testing.T) {
	r := testResolver(testStore())
	user, err := r.Resolve(context.Background(), RoleDoctor, "D001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleDoctor || user.Name != "Dr. Ben Carter" || user.Doctor == nil {
		t.Errorf("unexpected doctor identity: %+v", user)
	}
}

func TestResolver_PatientHydratesChildren(t *testing.T) {
	r := testResolver(testStore())
	user, err := r.Resolve(context.Background(), RolePatient, "P001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := user.Patient
	if p == nil {
		t.Fatal("expected patient record")
	}
	if len(p.MedicalHistory) != 2 {
		t.Errorf("expected 2 history events, got %d", len(p.MedicalHistory))
	}
	if len(p.LabResults) != 1 {
		t.Errorf("expected 1 lab result, got %d", len(p.LabResults))
	}
	if len(p.CurrentMedications) != 1 || p.CurrentMedications[0].Name != "Lisinopril" || p.CurrentMedications[0].Dosage != "10mg" {
		t.Errorf("expected prescription mapped to medication, got %+v", p.CurrentMedications)
	}
}

func TestResolver_PatientWithNoChildrenGetsEmptyLists(t *testing.T) {
	mem := testStore()
	mem.Load("medical_history", []store.Row{})
	mem.Load("lab_results", []store.Row{})
	mem.Load("prescriptions", []store.Row{})
	r := testResolver(mem)
	user, err := r.Resolve(context.Background(), RolePatient, "P001")
	if err != nil {
		t.Fatalf("zero child rows must not fail resolution: %v", err)
	}
	p := user.Patient
	if p.MedicalHistory == nil || p.LabResults == nil || p.CurrentMedications == nil {
		t.Error("expected empty lists, not nil")
	}
	if len(p.MedicalHistory) != 0 || len(p.LabResults) != 0 || len(p.CurrentMedications) != 0 {
		t.Errorf("expected empty lists, got %d/%d/%d", len(p.MedicalHistory), len(p.LabResults), len(p.CurrentMedications))
	}
}

func TestResolver_UnknownPatientIsNotFound(t *testing.T) {
	r := testResolver(testStore())
	user, err := r.Resolve(context.Background(), RolePatient, "P999")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if user != nil {
		t.Error("failed resolution must not return a partial user")
	}
}

type failingPrescriptions struct{}

func (failingPrescriptions) ListByPatient(ctx context.Context, patientID string) ([]*pharmacy.Prescription, error) {
	return nil, store.ErrUnavailable
}

func TestResolver_SubFetchFailureFailsResolution(t *testing.T) {
	mem := testStore()
	r := NewResolver(
		patient.NewService(patient.NewStoreRepo(mem)),
		doctor.NewService(doctor.NewStoreRepo(mem)),
		failingPrescriptions{},
	)
	user, err := r.Resolve(context.Background(), RolePatient, "P001")
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if user != nil {
		t.Error("failed hydration must not return a partial user")
	}
}

func TestResolver_InvalidRole(t *testing.T) {
	r := testResolver(testStore())
	if _, err := r.Resolve(context.Background(), Role("Nurse"), "X"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
