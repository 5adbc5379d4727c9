package appointment

import "context"

// ListParams scopes an appointment list. All fields are optional; empty
// values leave the collection unfiltered on that column.
type ListParams struct {
	DoctorID  string
	PatientID string
	Status    string
	// Upcoming orders date then time ascending (the dashboard's upcoming
	// list); otherwise the list is newest-day first, both columns applied
	// as compound sort keys.
	Upcoming bool
}

type Repository interface {
	List(ctx context.Context, params ListParams) ([]*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Count(ctx context.Context, params ListParams) (int, error)
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
}
