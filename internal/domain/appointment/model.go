package appointment

import "fmt"

// Appointment statuses.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true, StatusCancelled: true,
}

// Appointment maps to the appointments collection. PatientName and
// DoctorName are snapshots taken when the appointment is scheduled; they are
// not re-derived on read and may drift from the referenced records after a
// rename.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

func (a *Appointment) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("appointment: id is required")
	}
	if a.PatientID == "" || a.DoctorID == "" {
		return fmt.Errorf("appointment %s: patient_id and doctor_id are required", a.ID)
	}
	if a.Date == "" || a.Time == "" {
		return fmt.Errorf("appointment %s: date and time are required", a.ID)
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("appointment %s: invalid status %q", a.ID, a.Status)
	}
	return nil
}
