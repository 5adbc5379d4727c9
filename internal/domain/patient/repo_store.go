package patient

import (
	"context"
	"fmt"

	"github.com/medidesk/medidesk/internal/platform/store"
)

const (
	collection        = "patients"
	historyCollection = "medical_history"
	labsCollection    = "lab_results"
)

type storeRepo struct {
	client store.Client
}

func NewStoreRepo(client store.Client) Repository {
	return &storeRepo{client: client}
}

func (r *storeRepo) List(ctx context.Context, params ListParams) ([]*Patient, error) {
	rows, err := r.client.Select(ctx, store.Query{
		Collection: collection,
		Filters:    []store.Filter{{Column: "primary_doctor_id", Value: params.PrimaryDoctorID}},
		Search:     store.Search{Term: params.Search, Columns: []string{"name", "id"}},
		Order:      []store.Order{{Column: "name"}},
	})
	if err != nil {
		return nil, err
	}
	var out []*Patient
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

func (r *storeRepo) GetByID(ctx context.Context, id string) (*Patient, error) {
	row, err := r.client.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	var p Patient
	if err := store.DecodeRow(row, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("malformed row: %w", err)
	}
	return &p, nil
}

func (r *storeRepo) Count(ctx context.Context, primaryDoctorID string) (int, error) {
	return r.client.Count(ctx, store.Query{
		Collection: collection,
		Filters:    []store.Filter{{Column: "primary_doctor_id", Value: primaryDoctorID}},
	})
}

func (r *storeRepo) Create(ctx context.Context, p *Patient) (*Patient, error) {
	row, err := store.Encode(p)
	if err != nil {
		return nil, err
	}
	stored, err := r.client.Insert(ctx, collection, row)
	if err != nil {
		return nil, err
	}
	var out Patient
	if err := store.DecodeRow(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *storeRepo) ListHistory(ctx context.Context, patientID string) ([]MedicalHistoryEvent, error) {
	rows, err := r.client.Select(ctx, store.Query{
		Collection: historyCollection,
		Filters:    []store.Filter{{Column: "patient_id", Value: patientID}},
		Order:      []store.Order{{Column: "date"}},
	})
	if err != nil {
		return nil, err
	}
	out := []MedicalHistoryEvent{}
	if err := store.Decode(rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *storeRepo) ListLabs(ctx context.Context, patientID string) ([]LabResult, error) {
	rows, err := r.client.Select(ctx, store.Query{
		Collection: labsCollection,
		Filters:    []store.Filter{{Column: "patient_id", Value: patientID}},
		Order:      []store.Order{{Column: "date", Descending: true}},
	})
	if err != nil {
		return nil, err
	}
	out := []LabResult{}
	if err := store.Decode(rows, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}
	}
	return out, nil
}
