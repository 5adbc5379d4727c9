package billing

import (
	"context"
	"fmt"

	"github.com/medidesk/medidesk/internal/platform/store"
)

const collection = "invoices"

type storeRepo struct {
	client store.Client
}

func NewStoreRepo(client store.Client) Repository {
	return &storeRepo{client: client}
}

func (p ListParams) query() store.Query {
	return store.Query{
		Collection: collection,
		Filters: []store.Filter{
			{Column: "patient_id", Value: p.PatientID},
			{Column: "status", Value: p.Status},
		},
		Order: []store.Order{{Column: "date", Descending: true}},
	}
}

func (r *storeRepo) List(ctx context.Context, params ListParams) ([]*Invoice, error) {
	rows, err := r.client.Select(ctx, params.query())
	if err != nil {
		return nil, err
	}
	out := []*Invoice{}
	if err := store.Decode(rows, &out); err != nil {
		return nil, err
	}
	for _, i := range out {
		if err := i.Validate(); err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}
	}
	return out, nil
}

func (r *storeRepo) Count(ctx context.Context, params ListParams) (int, error) {
	q := params.query()
	q.Order = nil
	return r.client.Count(ctx, q)
}
