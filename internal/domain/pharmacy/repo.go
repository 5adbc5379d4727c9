package pharmacy

import "context"

type Repository interface {
	// ListByPatient returns the patient's prescriptions, newest start date
	// first. An empty patientID returns the whole collection.
	ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error)
	CountByPatient(ctx context.Context, patientID string) (int, error)
}
