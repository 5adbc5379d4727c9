package view

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/medidesk/medidesk/internal/domain/appointment"
	"github.com/medidesk/medidesk/internal/domain/billing"
	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/identity"
	"github.com/medidesk/medidesk/internal/domain/patient"
	"github.com/medidesk/medidesk/internal/domain/pharmacy"
	"github.com/medidesk/medidesk/pkg/respond"
)

// Handler serves resolved views with their scoped datasets.
type Handler struct {
	tokens        *identity.Tokens
	dashboard     *Dashboard
	patients      *patient.Service
	doctors       *doctor.Service
	appointments  *appointment.Service
	prescriptions *pharmacy.Service
	invoices      *billing.Service
}

func NewHandler(tokens *identity.Tokens, dashboard *Dashboard, patients *patient.Service, doctors *doctor.Service, appointments *appointment.Service, prescriptions *pharmacy.Service, invoices *billing.Service) *Handler {
	return &Handler{
		tokens:        tokens,
		dashboard:     dashboard,
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		prescriptions: prescriptions,
		invoices:      invoices,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/views/:page", h.GetView)
}

type viewResponse struct {
	View View `json:"view"`
	Data any  `json:"data"`
}

func (h *Handler) GetView(c echo.Context) error {
	claims, err := h.sessionClaims(c)
	if err != nil {
		return err
	}

	page, _ := ParsePage(c.Param("page"))
	v := SelectView(claims.Role, page, c.QueryParam("patient_id"), claims.Subject)

	data, err := h.load(c, v)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, viewResponse{View: v, Data: data})
}

func (h *Handler) sessionClaims(c echo.Context) (*identity.Claims, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
	}
	claims, err := h.tokens.Parse(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (h *Handler) load(c echo.Context, v View) (any, error) {
	ctx := c.Request().Context()
	switch v.Page {
	case PageDashboard, PageReports:
		return h.loadDashboard(ctx, v.Scope)
	case PagePatients:
		params := patient.ListParams{Search: c.QueryParam("q")}
		if v.Scope.Kind == ScopeDoctorScoped {
			params.PrimaryDoctorID = v.Scope.ID
		}
		return h.patients.List(ctx, params)
	case PageDoctors:
		return h.doctors.List(ctx)
	case PageAppointments:
		params := appointment.ListParams{Status: c.QueryParam("status")}
		switch v.Scope.Kind {
		case ScopeDoctorScoped:
			params.DoctorID = v.Scope.ID
		case ScopePatientScoped:
			params.PatientID = v.Scope.ID
		}
		return h.appointments.List(ctx, params)
	case PagePharmacy:
		patientID := c.QueryParam("patient_id")
		if v.Scope.Kind == ScopePatientScoped {
			patientID = v.Scope.ID
		}
		return h.prescriptions.ListByPatient(ctx, patientID)
	case PageBilling:
		params := billing.ListParams{PatientID: c.QueryParam("patient_id"), Status: c.QueryParam("status")}
		if v.Scope.Kind == ScopePatientScoped {
			params.PatientID = v.Scope.ID
		}
		return h.invoices.List(ctx, params)
	case PagePatientProfile:
		return h.loadProfile(ctx, v.PatientID)
	}
	return nil, fmt.Errorf("view: unhandled page %q", v.Page)
}

type dashboardData struct {
	Stats    *Stats                     `json:"stats"`
	Upcoming []*appointment.Appointment `json:"upcoming"`
}

func (h *Handler) loadDashboard(ctx context.Context, scope Scope) (*dashboardData, error) {
	data := &dashboardData{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Stats, err = h.dashboard.Stats(ctx, scope)
		return
	})
	g.Go(func() (err error) {
		data.Upcoming, err = h.dashboard.Upcoming(ctx, scope)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

type profileData struct {
	Patient *patient.Patient              `json:"patient"`
	History []patient.MedicalHistoryEvent `json:"history"`
	Labs    []patient.LabResult           `json:"labs"`
}

func (h *Handler) loadProfile(ctx context.Context, patientID string) (*profileData, error) {
	data := &profileData{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Patient, err = h.patients.Get(ctx, patientID)
		return
	})
	g.Go(func() (err error) {
		data.History, err = h.patients.History(ctx, patientID)
		return
	})
	g.Go(func() (err error) {
		data.Labs, err = h.patients.Labs(ctx, patientID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
