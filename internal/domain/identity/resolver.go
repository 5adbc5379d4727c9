package identity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/patient"
	"github.com/medidesk/medidesk/internal/domain/pharmacy"
)

// The admin identity is not backed by a collection row.
const (
	adminID   = "admin"
	adminName = "Dr. Evelyn Reed"
)

// PatientDirectory is the slice of the patient service the resolver needs.
type PatientDirectory interface {
	Get(ctx context.Context, id string) (*patient.Patient, error)
	History(ctx context.Context, patientID string) ([]patient.MedicalHistoryEvent, error)
	Labs(ctx context.Context, patientID string) ([]patient.LabResult, error)
}

type DoctorDirectory interface {
	Get(ctx context.Context, id string) (*doctor.Doctor, error)
}

type PrescriptionDirectory interface {
	ListByPatient(ctx context.Context, patientID string) ([]*pharmacy.Prescription, error)
}

// Resolver turns (role, id) credentials into a fully hydrated User.
type Resolver struct {
	patients      PatientDirectory
	doctors       DoctorDirectory
	prescriptions PrescriptionDirectory
}

func NewResolver(patients PatientDirectory, doctors DoctorDirectory, prescriptions PrescriptionDirectory) *Resolver {
	return &Resolver{patients: patients, doctors: doctors, prescriptions: prescriptions}
}

// Resolve hydrates the identity for a login. Patient resolution fetches the
// record plus its history, labs and prescriptions; any failure fails the
// whole resolution, so the caller never sees a partially hydrated User.
func (r *Resolver) Resolve(ctx context.Context, role Role, id string) (*User, error) {
	switch role {
	case RoleAdmin:
		return &User{Role: RoleAdmin, ID: adminID, Name: adminName}, nil
	case RoleDoctor:
		d, err := r.doctors.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return &User{Role: RoleDoctor, ID: d.ID, Name: d.Name, Doctor: d}, nil
	case RolePatient:
		p, err := r.patients.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := r.hydratePatient(ctx, p); err != nil {
			return nil, err
		}
		return &User{Role: RolePatient, ID: p.ID, Name: p.Name, Patient: p}, nil
	}
	return nil, fmt.Errorf("identity: invalid role %q", role)
}

func (r *Resolver) hydratePatient(ctx context.Context, p *patient.Patient) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		history, err := r.patients.History(ctx, p.ID)
		if err != nil {
			return err
		}
		p.MedicalHistory = history
		return nil
	})
	g.Go(func() error {
		labs, err := r.patients.Labs(ctx, p.ID)
		if err != nil {
			return err
		}
		p.LabResults = labs
		return nil
	})
	g.Go(func() error {
		rxs, err := r.prescriptions.ListByPatient(ctx, p.ID)
		if err != nil {
			return err
		}
		meds := make([]patient.Medication, 0, len(rxs))
		for _, rx := range rxs {
			meds = append(meds, patient.Medication{Name: rx.Medication, Dosage: rx.Dosage})
		}
		p.CurrentMedications = meds
		return nil
	})

	return g.Wait()
}
