package view

import "github.com/medidesk/medidesk/internal/domain/identity"

// Page is a navigable dashboard screen.
type Page string

const (
	PageDashboard      Page = "dashboard"
	PagePatients       Page = "patients"
	PageDoctors        Page = "doctors"
	PageAppointments   Page = "appointments"
	PageBilling        Page = "billing"
	PagePharmacy       Page = "pharmacy"
	PageReports        Page = "reports"
	PagePatientProfile Page = "patient_profile"
)

// allowedPages is the per-role navigation allow-list. Pages absent from a
// role's set fall back to that role's dashboard.
var allowedPages = map[identity.Role]map[Page]bool{
	identity.RoleAdmin: {
		PageDashboard: true, PagePatients: true, PageDoctors: true,
		PageAppointments: true, PageBilling: true, PagePharmacy: true,
		PageReports: true, PagePatientProfile: true,
	},
	identity.RoleDoctor: {
		PageDashboard: true, PagePatients: true,
		PageAppointments: true, PagePatientProfile: true,
	},
	identity.RolePatient: {
		PageDashboard: true, PageAppointments: true,
		PagePatientProfile: true, PagePharmacy: true, PageBilling: true,
	},
}

// Allowed reports whether role may navigate to page. Unknown pages are
// disallowed for every role.
func Allowed(role identity.Role, page Page) bool {
	return allowedPages[role][page]
}

// ParsePage maps a route parameter to a Page; ok is false for unknown
// names, which the router treats the same as a disallowed page.
func ParsePage(s string) (Page, bool) {
	p := Page(s)
	for _, pages := range allowedPages {
		if pages[p] {
			return p, true
		}
	}
	return p, false
}
