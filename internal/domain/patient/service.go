package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medidesk/medidesk/pkg/avatar"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params ListParams) ([]*Patient, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Count(ctx context.Context, primaryDoctorID string) (int, error) {
	return s.repo.Count(ctx, primaryDoctorID)
}

func (s *Service) History(ctx context.Context, patientID string) ([]MedicalHistoryEvent, error) {
	return s.repo.ListHistory(ctx, patientID)
}

func (s *Service) Labs(ctx context.Context, patientID string) ([]LabResult, error) {
	return s.repo.ListLabs(ctx, patientID)
}

// CreateInput is the add-patient form. Fields not on the form get system
// defaults at insert time.
type CreateInput struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	BloodType       string `json:"blood_type"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	PrimaryDoctorID string `json:"primary_doctor_id"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Patient, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Age < 0 {
		return nil, fmt.Errorf("age must not be negative")
	}
	if !validGenders[in.Gender] {
		return nil, fmt.Errorf("invalid gender: %s", in.Gender)
	}
	p := &Patient{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		Age:                in.Age,
		Gender:             in.Gender,
		BloodType:          in.BloodType,
		LastVisit:          time.Now().Format("2006-01-02"),
		Status:             StatusStable,
		ImageURL:           avatar.URL(in.Gender),
		Phone:              in.Phone,
		Email:              in.Email,
		Address:            in.Address,
		Allergies:          []string{},
		ChronicConditions:  []string{},
		CurrentMedications: []Medication{},
		MedicalHistory:     []MedicalHistoryEvent{},
		LabResults:         []LabResult{},
		PrimaryDoctorID:    in.PrimaryDoctorID,
	}
	return s.repo.Create(ctx, p)
}
