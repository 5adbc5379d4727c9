package view

import "github.com/medidesk/medidesk/internal/domain/identity"

// ScopeKind discriminates the viewing scope variant.
type ScopeKind string

const (
	ScopeAdminWide     ScopeKind = "admin_wide"
	ScopeDoctorScoped  ScopeKind = "doctor_scoped"
	ScopePatientScoped ScopeKind = "patient_scoped"
)

// Scope states explicitly whose data a view may see. ID is empty only for
// AdminWide.
type Scope struct {
	Kind ScopeKind `json:"kind"`
	ID   string    `json:"id,omitempty"`
}

// View is the resolved screen for a navigation request.
type View struct {
	Page  Page  `json:"page"`
	Scope Scope `json:"scope"`
	// PatientID is the profile subject, set only for PatientProfile.
	PatientID string `json:"patient_id,omitempty"`
	// SelfView marks a patient viewing their own profile.
	SelfView bool `json:"self_view,omitempty"`
	// Fallback marks that the requested page was replaced.
	Fallback bool `json:"fallback,omitempty"`
}

func scopeFor(role identity.Role, userID string) Scope {
	switch role {
	case identity.RoleDoctor:
		return Scope{Kind: ScopeDoctorScoped, ID: userID}
	case identity.RolePatient:
		return Scope{Kind: ScopePatientScoped, ID: userID}
	}
	return Scope{Kind: ScopeAdminWide}
}

// SelectView resolves a navigation request to a concrete view. It never
// fetches; callers load data for the returned view afterwards.
//
// Disallowed or unrecognized pages fall back to the role's dashboard.
// PatientProfile needs a selected patient for Admin and Doctor; without
// one the view falls back to the patient list. A Patient always profiles
// themselves regardless of selection.
func SelectView(role identity.Role, page Page, selectedPatientID, userID string) View {
	scope := scopeFor(role, userID)

	if !Allowed(role, page) {
		return View{Page: PageDashboard, Scope: scope, Fallback: true}
	}

	if page != PagePatientProfile {
		return View{Page: page, Scope: scope}
	}

	if role == identity.RolePatient {
		return View{Page: PagePatientProfile, Scope: scope, PatientID: userID, SelfView: true}
	}
	if selectedPatientID == "" {
		return View{Page: PagePatients, Scope: scope, Fallback: true}
	}
	return View{Page: PagePatientProfile, Scope: scope, PatientID: selectedPatientID}
}
