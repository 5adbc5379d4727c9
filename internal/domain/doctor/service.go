package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medidesk/medidesk/pkg/avatar"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// CreateInput is the add-doctor form. Validation failures are caught here,
// before any store call, so the caller's input survives for a retry.
type CreateInput struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Status    string `json:"status"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Doctor, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Specialty == "" {
		return nil, fmt.Errorf("specialty is required")
	}
	status := in.Status
	if status == "" {
		status = StatusAvailable
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	d := &Doctor{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Specialty: in.Specialty,
		Status:    status,
		ImageURL:  avatar.URL(""),
	}
	return s.repo.Create(ctx, d)
}
