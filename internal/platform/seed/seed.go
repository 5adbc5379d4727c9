// Package seed loads the demo dataset through a store client so every
// driver (rest, postgres, memory) can serve the same walkthrough data.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medidesk/medidesk/internal/platform/store"
)

// Collections in insert order; child rows go in after their parents.
var collectionOrder = []string{
	"doctors",
	"patients",
	"medical_history",
	"lab_results",
	"prescriptions",
	"appointments",
	"invoices",
}

// Demo returns the demo dataset keyed by collection.
func Demo() map[string][]store.Row {
	history := []store.Row{
		{"id": "MH001", "patient_id": "P001", "date": "2023-01-15", "event": "Annual Check-up", "details": "Routine physical examination, all vitals normal.", "doctor": "Dr. Evelyn Reed"},
		{"id": "MH002", "patient_id": "P001", "date": "2022-05-20", "event": "Flu Shot", "details": "Administered seasonal influenza vaccine.", "doctor": "Dr. Ben Carter"},
		{"id": "MH003", "patient_id": "P001", "date": "2021-11-02", "event": "Broken Arm", "details": "Cast applied for a fractured left ulna.", "doctor": "Dr. Olivia Chen"},
	}
	labs := []store.Row{
		{"id": "LR001", "patient_id": "P001", "date": "2023-08-10", "test_name": "Complete Blood Count (CBC)", "result": "Within normal limits", "reference_range": "N/A", "status": "Normal"},
		{"id": "LR002", "patient_id": "P001", "date": "2023-08-10", "test_name": "Cholesterol Panel", "result": "LDL 110 mg/dL", "reference_range": "<100 mg/dL", "status": "Abnormal"},
		{"id": "LR003", "patient_id": "P002", "date": "2023-07-22", "test_name": "Thyroid Stimulating Hormone (TSH)", "result": "2.5 mIU/L", "reference_range": "0.4-4.0 mIU/L", "status": "Normal"},
	}

	return map[string][]store.Row{
		"doctors": {
			{"id": "D001", "name": "Dr. Evelyn Reed", "specialty": "Cardiology", "status": "Available", "image_url": "https://randomuser.me/api/portraits/women/68.jpg"},
			{"id": "D002", "name": "Dr. Ben Carter", "specialty": "Pediatrics", "status": "On-call", "image_url": "https://randomuser.me/api/portraits/men/67.jpg"},
			{"id": "D003", "name": "Dr. Olivia Chen", "specialty": "Orthopedics", "status": "Away", "image_url": "https://randomuser.me/api/portraits/women/62.jpg"},
			{"id": "D004", "name": "Dr. Marcus Green", "specialty": "Neurology", "status": "Available", "image_url": "https://randomuser.me/api/portraits/men/52.jpg"},
		},
		"patients": {
			{
				"id": "P001", "name": "John Doe", "age": 45, "gender": "Male",
				"blood_type": "O+", "last_visit": "2023-08-10", "status": "Stable",
				"image_url": "https://randomuser.me/api/portraits/men/32.jpg",
				"phone":     "555-123-4567", "email": "john.doe@example.com",
				"address":           "123 Main St, Anytown, USA",
				"emergency_contact": map[string]any{"name": "Jane Doe", "relationship": "Wife", "phone": "555-987-6543"},
				"allergies":         []any{"Peanuts", "Penicillin"},
				"chronic_conditions": []any{"Hypertension"},
				"current_medications": []any{
					map[string]any{"name": "Lisinopril", "dosage": "10mg"},
				},
				"medical_history": []any{}, "lab_results": []any{},
				"primary_doctor_id": "D001",
			},
			{
				"id": "P002", "name": "Jane Smith", "age": 32, "gender": "Female",
				"blood_type": "A-", "last_visit": "2023-07-22", "status": "Recovering",
				"image_url": "https://randomuser.me/api/portraits/women/44.jpg",
				"phone":     "555-234-5678", "email": "jane.smith@example.com",
				"address":           "456 Oak Ave, Anytown, USA",
				"emergency_contact": map[string]any{"name": "Robert Smith", "relationship": "Husband", "phone": "555-876-5432"},
				"allergies":         []any{}, "chronic_conditions": []any{},
				"current_medications": []any{
					map[string]any{"name": "Ibuprofen", "dosage": "as needed"},
				},
				"medical_history": []any{}, "lab_results": []any{},
				"primary_doctor_id": "D002",
			},
			{
				"id": "P003", "name": "Michael Johnson", "age": 68, "gender": "Male",
				"blood_type": "B+", "last_visit": "2023-09-01", "status": "Critical",
				"image_url": "https://randomuser.me/api/portraits/men/45.jpg",
				"phone":     "555-345-6789", "email": "michael.j@example.com",
				"address":           "789 Pine Ln, Anytown, USA",
				"emergency_contact": map[string]any{"name": "Sarah Johnson", "relationship": "Daughter", "phone": "555-765-4321"},
				"allergies":         []any{"Aspirin"},
				"chronic_conditions": []any{"Diabetes Type 2", "Coronary Artery Disease"},
				"current_medications": []any{
					map[string]any{"name": "Metformin", "dosage": "500mg"},
					map[string]any{"name": "Atorvastatin", "dosage": "20mg"},
				},
				"medical_history": []any{}, "lab_results": []any{},
				"primary_doctor_id": "D001",
			},
		},
		"medical_history": history,
		"lab_results":     labs,
		"prescriptions": {
			{"id": "PR001", "patient_id": "P001", "medication": "Lisinopril", "dosage": "10mg", "frequency": "Once daily", "start_date": "2022-01-01", "end_date": "2023-12-31"},
			{"id": "PR002", "patient_id": "P003", "medication": "Metformin", "dosage": "500mg", "frequency": "Twice daily", "start_date": "2021-06-15", "end_date": "2024-06-15"},
			{"id": "PR003", "patient_id": "P002", "medication": "Amoxicillin", "dosage": "250mg", "frequency": "Thrice daily", "start_date": "2023-07-22", "end_date": "2023-07-29"},
			{"id": "PR004", "patient_id": "P001", "medication": "Atorvastatin", "dosage": "20mg", "frequency": "Once daily", "start_date": "2023-08-10", "end_date": "2024-08-10"},
		},
		"appointments": {
			{"id": "A001", "patient_id": "P001", "patient_name": "John Doe", "doctor_id": "D001", "doctor_name": "Dr. Evelyn Reed", "date": "2023-10-25", "time": "10:00", "reason": "Follow-up Consultation", "status": "Scheduled"},
			{"id": "A002", "patient_id": "P002", "patient_name": "Jane Smith", "doctor_id": "D002", "doctor_name": "Dr. Ben Carter", "date": "2023-10-25", "time": "11:30", "reason": "Annual Check-up", "status": "Scheduled"},
			{"id": "A003", "patient_id": "P003", "patient_name": "Michael Johnson", "doctor_id": "D001", "doctor_name": "Dr. Evelyn Reed", "date": "2023-09-01", "time": "09:00", "reason": "Emergency Visit", "status": "Completed"},
			{"id": "A004", "patient_id": "P001", "patient_name": "John Doe", "doctor_id": "D001", "doctor_name": "Dr. Evelyn Reed", "date": "2023-11-15", "time": "10:00", "reason": "Lab Results Review", "status": "Scheduled"},
		},
		"invoices": {
			{"id": "B001", "patient_id": "P001", "date": "2023-08-10", "service": "Cardiology Consultation", "amount": 250.00, "status": "Paid"},
			{"id": "B002", "patient_id": "P001", "date": "2023-08-10", "service": "Cholesterol Panel", "amount": 75.50, "status": "Due"},
			{"id": "B003", "patient_id": "P002", "date": "2023-07-22", "service": "Pediatric Check-up", "amount": 150.00, "status": "Paid"},
			{"id": "B004", "patient_id": "P003", "date": "2023-09-01", "service": "Emergency Room Visit", "amount": 850.00, "status": "Overdue"},
			{"id": "B005", "patient_id": "P003", "date": "2023-09-01", "service": "X-Ray Imaging", "amount": 300.00, "status": "Due"},
		},
	}
}

// Load inserts the demo dataset through the client. Parent collections go
// in first so referencing rows never dangle.
func Load(ctx context.Context, client store.Client, log zerolog.Logger) error {
	data := Demo()
	for _, collection := range collectionOrder {
		rows := data[collection]
		for _, row := range rows {
			if _, err := client.Insert(ctx, collection, row); err != nil {
				return fmt.Errorf("seed %s %v: %w", collection, row["id"], err)
			}
		}
		log.Info().Str("collection", collection).Int("rows", len(rows)).Msg("seeded collection")
	}
	return nil
}

// Preload fills a memory store directly; the memory driver uses it at
// startup so a demo server works with no external store.
func Preload(mem *store.Memory) {
	for collection, rows := range Demo() {
		mem.Load(collection, rows)
	}
}
