package patient

import "context"

// ListParams scopes a patient list the way the dashboard pages do: an
// optional primary-doctor filter (the doctor's "My Patients" view) and a
// settled search term matched against name and id. Empty values mean
// unscoped.
type ListParams struct {
	PrimaryDoctorID string
	Search          string
}

type Repository interface {
	// List returns patients matching the params, ordered by name ascending.
	List(ctx context.Context, params ListParams) ([]*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	Count(ctx context.Context, primaryDoctorID string) (int, error)
	Create(ctx context.Context, p *Patient) (*Patient, error)

	// ListHistory returns the patient's medical history in chronological
	// order.
	ListHistory(ctx context.Context, patientID string) ([]MedicalHistoryEvent, error)
	// ListLabs returns the patient's lab results, most recent first.
	ListLabs(ctx context.Context, patientID string) ([]LabResult, error)
}
