package billing

import "context"

// ListParams scopes an invoice list; empty values leave the collection
// unfiltered on that column.
type ListParams struct {
	PatientID string
	Status    string
}

type Repository interface {
	// List returns invoices matching the params, newest first.
	List(ctx context.Context, params ListParams) ([]*Invoice, error)
	Count(ctx context.Context, params ListParams) (int, error)
}
