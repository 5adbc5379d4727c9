package pharmacy

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) CountByPatient(ctx context.Context, patientID string) (int, error) {
	return s.repo.CountByPatient(ctx, patientID)
}
