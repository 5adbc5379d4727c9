package appointment

import (
	"context"
	"fmt"

	"github.com/medidesk/medidesk/internal/platform/store"
)

const collection = "appointments"

type storeRepo struct {
	client store.Client
}

func NewStoreRepo(client store.Client) Repository {
	return &storeRepo{client: client}
}

func (p ListParams) query() store.Query {
	// Same-day appointments need the time column as a second sort key; a
	// single-field sort cannot order them.
	order := []store.Order{{Column: "date", Descending: true}, {Column: "time", Descending: true}}
	if p.Upcoming {
		order = []store.Order{{Column: "date"}, {Column: "time"}}
	}
	return store.Query{
		Collection: collection,
		Filters: []store.Filter{
			{Column: "doctor_id", Value: p.DoctorID},
			{Column: "patient_id", Value: p.PatientID},
			{Column: "status", Value: p.Status},
		},
		Order: order,
	}
}

func (r *storeRepo) List(ctx context.Context, params ListParams) ([]*Appointment, error) {
	rows, err := r.client.Select(ctx, params.query())
	if err != nil {
		return nil, err
	}
	var out []*Appointment
	if err := store.Decode(rows, &out); err != nil {
		return nil, err
	}
	for _, a := range out {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}
	}
	return out, nil
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	row, err := r.client.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	var a Appointment
	if err := store.DecodeRow(row, &a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("malformed row: %w", err)
	}
	return &a, nil
}

func (r *storeRepo) Count(ctx context.Context, params ListParams) (int, error) {
	q := params.query()
	q.Order = nil
	return r.client.Count(ctx, q)
}

func (r *storeRepo) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	row, err := store.Encode(a)
	if err != nil {
		return nil, err
	}
	stored, err := r.client.Insert(ctx, collection, row)
	if err != nil {
		return nil, err
	}
	var out Appointment
	if err := store.DecodeRow(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
