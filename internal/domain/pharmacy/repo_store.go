package pharmacy

import (
	"context"
	"fmt"

	"github.com/medidesk/medidesk/internal/platform/store"
)

const collection = "prescriptions"

type storeRepo struct {
	client store.Client
}

func NewStoreRepo(client store.Client) Repository {
	return &storeRepo{client: client}
}

func (r *storeRepo) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	rows, err := r.client.Select(ctx, store.Query{
		Collection: collection,
		Filters:    []store.Filter{{Column: "patient_id", Value: patientID}},
		Order:      []store.Order{{Column: "start_date", Descending: true}},
	})
	if err != nil {
		return nil, err
	}
	out := []*Prescription{}
	if err := store.Decode(rows, &out); err != nil {
		return nil, err
	}
	for _, p := range out {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}
	}
	return out, nil
}

func (r *storeRepo) CountByPatient(ctx context.Context, patientID string) (int, error) {
	return r.client.Count(ctx, store.Query{
		Collection: collection,
		Filters:    []store.Filter{{Column: "patient_id", Value: patientID}},
	})
}
