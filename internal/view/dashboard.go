package view

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/medidesk/medidesk/internal/domain/appointment"
	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/patient"
	"github.com/medidesk/medidesk/internal/domain/pharmacy"
)

// Stats is a dashboard's count summary. Which fields are populated
// depends on the viewing scope.
type Stats struct {
	Patients     int `json:"patients,omitempty"`
	Doctors      int `json:"doctors,omitempty"`
	Appointments int `json:"appointments"`
	Medications  int `json:"medications,omitempty"`
}

// Dashboard assembles scope-appropriate summary data.
type Dashboard struct {
	patients      *patient.Service
	doctors       *doctor.Service
	appointments  *appointment.Service
	prescriptions *pharmacy.Service
}

func NewDashboard(patients *patient.Service, doctors *doctor.Service, appointments *appointment.Service, prescriptions *pharmacy.Service) *Dashboard {
	return &Dashboard{
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		prescriptions: prescriptions,
	}
}

// Stats computes the count summary for scope. Counts are fetched
// concurrently; any failure fails the whole summary.
func (d *Dashboard) Stats(ctx context.Context, scope Scope) (*Stats, error) {
	stats := &Stats{}
	g, ctx := errgroup.WithContext(ctx)

	switch scope.Kind {
	case ScopeAdminWide:
		g.Go(func() (err error) {
			stats.Patients, err = d.patients.Count(ctx, "")
			return
		})
		g.Go(func() (err error) {
			stats.Doctors, err = d.doctors.Count(ctx)
			return
		})
		g.Go(func() (err error) {
			stats.Appointments, err = d.appointments.Count(ctx, appointment.ListParams{Status: appointment.StatusScheduled})
			return
		})
	case ScopeDoctorScoped:
		g.Go(func() (err error) {
			stats.Patients, err = d.patients.Count(ctx, scope.ID)
			return
		})
		g.Go(func() (err error) {
			stats.Appointments, err = d.appointments.Count(ctx, appointment.ListParams{DoctorID: scope.ID, Status: appointment.StatusScheduled})
			return
		})
	case ScopePatientScoped:
		g.Go(func() (err error) {
			stats.Appointments, err = d.appointments.Count(ctx, appointment.ListParams{PatientID: scope.ID, Status: appointment.StatusScheduled})
			return
		})
		g.Go(func() (err error) {
			stats.Medications, err = d.prescriptions.CountByPatient(ctx, scope.ID)
			return
		})
	default:
		return nil, fmt.Errorf("view: unknown scope kind %q", scope.Kind)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Upcoming lists the scope's scheduled appointments, soonest first.
func (d *Dashboard) Upcoming(ctx context.Context, scope Scope) ([]*appointment.Appointment, error) {
	params := appointment.ListParams{Status: appointment.StatusScheduled, Upcoming: true}
	switch scope.Kind {
	case ScopeAdminWide:
	case ScopeDoctorScoped:
		params.DoctorID = scope.ID
	case ScopePatientScoped:
		params.PatientID = scope.ID
	default:
		return nil, fmt.Errorf("view: unknown scope kind %q", scope.Kind)
	}
	return d.appointments.List(ctx, params)
}
