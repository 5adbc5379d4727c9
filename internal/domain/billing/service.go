package billing

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params ListParams) ([]*Invoice, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Count(ctx context.Context, params ListParams) (int, error) {
	return s.repo.Count(ctx, params)
}
