package doctor

import "context"

type Repository interface {
	// List returns all doctors ordered by name ascending.
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, d *Doctor) (*Doctor, error)
}
