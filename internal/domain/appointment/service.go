package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/patient"
)

// PatientDirectory is the slice of the patient service the scheduler needs.
type PatientDirectory interface {
	Get(ctx context.Context, id string) (*patient.Patient, error)
}

// DoctorDirectory is the slice of the doctor service the scheduler needs.
type DoctorDirectory interface {
	Get(ctx context.Context, id string) (*doctor.Doctor, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	doctors  DoctorDirectory
}

func NewService(repo Repository, patients PatientDirectory, doctors DoctorDirectory) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

func (s *Service) List(ctx context.Context, params ListParams) ([]*Appointment, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Count(ctx context.Context, params ListParams) (int, error) {
	return s.repo.Count(ctx, params)
}

// ScheduleInput is the new-appointment form.
type ScheduleInput struct {
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
}

// Schedule inserts a new appointment. The patient and doctor names are
// captured here, at creation time, and stored on the row; later renames of
// either record do not propagate back.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (*Appointment, error) {
	if in.PatientID == "" || in.DoctorID == "" {
		return nil, fmt.Errorf("patient_id and doctor_id are required")
	}
	if in.Date == "" || in.Time == "" {
		return nil, fmt.Errorf("date and time are required")
	}

	p, err := s.patients.Get(ctx, in.PatientID)
	if err != nil {
		return nil, fmt.Errorf("look up patient: %w", err)
	}
	d, err := s.doctors.Get(ctx, in.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("look up doctor: %w", err)
	}

	a := &Appointment{
		ID:          uuid.NewString(),
		PatientID:   p.ID,
		PatientName: p.Name,
		DoctorID:    d.ID,
		DoctorName:  d.Name,
		Date:        in.Date,
		Time:        in.Time,
		Reason:      in.Reason,
		Status:      StatusScheduled,
	}
	return s.repo.Create(ctx, a)
}
