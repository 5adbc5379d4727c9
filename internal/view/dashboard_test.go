package view

import (
	"context"
	"testing"

	"github.com/medidesk/medidesk/internal/domain/appointment"
	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/patient"
	"github.com/medidesk/medidesk/internal/domain/pharmacy"
	"github.com/medidesk/medidesk/internal/platform/store"
)

func patientRow(id, name, doctorID string) store.Row {
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

func testDashboard() *Dashboard {
	mem := store.NewMemory()
	mem.Load("patients", []store.Row{
		patientRow("P001", "Alice Borland", "D001"),
		patientRow("P002", "Brian Okoye", "D002"),
		patientRow("P003", "Cora Borland", "D001"),
	})
	mem.Load("doctors", []store.Row{
		{"id": "D001", "name": "Dr. Ben Carter", "specialty": "Cardiology", "status": "Available", "image_url": "https://example.test/d.jpg"},
		{"id": "D002", "name": "Dr. Ana Ruiz", "specialty": "Neurology", "status": "On-call", "image_url": "https://example.test/d2.jpg"},
	})
	mem.Load("appointments", []store.Row{
		{"id": "A1", "patient_id": "P001", "patient_name": "Alice Borland", "doctor_id": "D001", "doctor_name": "Dr. Ben Carter", "date": "2026-09-02", "time": "09:00", "reason": "Checkup", "status": "Scheduled"},
		{"id": "A2", "patient_id": "P002", "patient_name": "Brian Okoye", "doctor_id": "D002", "doctor_name": "Dr. Ana Ruiz", "date": "2026-09-01", "time": "10:00", "reason": "Follow-up", "status": "Scheduled"},
		{"id": "A3", "patient_id": "P001", "patient_name": "Alice Borland", "doctor_id": "D001", "doctor_name": "Dr. Ben Carter", "date": "2026-09-01", "time": "08:30", "reason": "Labs review", "status": "Scheduled"},
		{"id": "A4", "patient_id": "P003", "patient_name": "Cora Borland", "doctor_id": "D001", "doctor_name": "Dr. Ben Carter", "date": "2026-08-01", "time": "11:00", "reason": "Old visit", "status": "Completed"},
	})
	mem.Load("prescriptions", []store.Row{
		{"id": "RX1", "patient_id": "P001", "medication": "Lisinopril", "dosage": "10mg", "frequency": "Once daily", "start_date": "2024-01-10", "end_date": "2025-01-10"},
		{"id": "RX2", "patient_id": "P001", "medication": "Metformin", "dosage": "500mg", "frequency": "Twice daily", "start_date": "2024-06-01", "end_date": "2025-06-01"},
	})

	patients := patient.NewService(patient.NewStoreRepo(mem))
	doctors := doctor.NewService(doctor.NewStoreRepo(mem))
	appointments := appointment.NewService(appointment.NewStoreRepo(mem), patients, doctors)
	prescriptions := pharmacy.NewService(pharmacy.NewStoreRepo(mem))
	return NewDashboard(patients, doctors, appointments, prescriptions)
}

func TestDashboard_AdminStats(t *testing.T) {
	d := testDashboard()
	stats, err := d.Stats(context.Background(), Scope{Kind: ScopeAdminWide})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Patients != 3 || stats.Doctors != 2 || stats.Appointments != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestDashboard_DoctorStatsAreScoped(t *testing.T) {
	d := testDashboard()
	stats, err := d.Stats(context.Background(), Scope{Kind: ScopeDoctorScoped, ID: "D001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Patients != 2 {
		t.Errorf("expected 2 patients for D001, got %d", stats.Patients)
	}
	if stats.Appointments != 2 {
		t.Errorf("expected 2 scheduled appointments for D001, got %d", stats.Appointments)
	}
}

func TestDashboard_PatientStats(t *testing.T) {
	d := testDashboard()
	stats, err := d.Stats(context.Background(), Scope{Kind: ScopePatientScoped, ID: "P001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Appointments != 2 || stats.Medications != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestDashboard_UpcomingSoonestFirst(t *testing.T) {
	d := testDashboard()
	upcoming, err := d.Upcoming(context.Background(), Scope{Kind: ScopeDoctorScoped, ID: "D001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming appointments, got %d", len(upcoming))
	}
	if upcoming[0].ID != "A3" || upcoming[1].ID != "A1" {
		t.Errorf("expected soonest first [A3 A1], got [%s %s]", upcoming[0].ID, upcoming[1].ID)
	}
}

func TestDashboard_UnknownScopeKind(t *testing.T) {
	d := testDashboard()
	if _, err := d.Stats(context.Background(), Scope{Kind: ScopeKind("global")}); err == nil {
		t.Fatal("expected error for unknown scope kind")
	}
}
