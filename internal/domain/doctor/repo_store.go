package doctor

import (
	"context"
	"fmt"

	"github.com/medidesk/medidesk/internal/platform/store"
)

const collection = "doctors"

type storeRepo struct {
	client store.Client
}

func NewStoreRepo(client store.Client) Repository {
	return &storeRepo{client: client}
}

func (r *storeRepo) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.client.Select(ctx, store.Query{
		Collection: collection,
		Order:      []store.Order{{Column: "name"}},
	})
	if err != nil {
		return nil, err
	}
	var out []*Doctor
	if err := store.Decode(rows, &out); err != nil {
		return nil, err
	}
	for _, d := range out {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("malformed row: %w", err)
		}
	}
	return out, nil
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*Doctor, error) {
	row, err := r.client.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	var d Doctor
	if err := store.DecodeRow(row, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("malformed row: %w", err)
	}
	return &d, nil
}

func (r *storeRepo) Count(ctx context.Context) (int, error) {
	return r.client.Count(ctx, store.Query{Collection: collection})
}

func (r *storeRepo) Create(ctx context.Context, d *Doctor) (*Doctor, error) {
	row, err := store.Encode(d)
	if err != nil {
		return nil, err
	}
	stored, err := r.client.Insert(ctx, collection, row)
	if err != nil {
		return nil, err
	}
	var out Doctor
	if err := store.DecodeRow(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
