package patient

import "fmt"

// Patient statuses.
const (
	StatusStable     = "Stable"
	StatusRecovering = "Recovering"
	StatusCritical   = "Critical"
)

var validStatuses = map[string]bool{
	StatusStable: true, StatusRecovering: true, StatusCritical: true,
}

var validGenders = map[string]bool{
	"Male": true, "Female": true, "Other": true,
}

// Lab result statuses.
const (
	LabNormal   = "Normal"
	LabAbnormal = "Abnormal"
)

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type Medication struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// MedicalHistoryEvent maps to the medical_history collection. Doctor is a
// free-text attribution, not a foreign key.
type MedicalHistoryEvent struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	Date      string `json:"date"`
	Event     string `json:"event"`
	Details   string `json:"details"`
	Doctor    string `json:"doctor"`
}

// LabResult maps to the lab_results collection.
type LabResult struct {
	ID             string `json:"id"`
	PatientID      string `json:"patient_id"`
	Date           string `json:"date"`
	TestName       string `json:"test_name"`
	Result         string `json:"result"`
	ReferenceRange string `json:"reference_range"`
	Status         string `json:"status"`
}

func (l *LabResult) Validate() error {
	if l.ID == "" || l.PatientID == "" {
		return fmt.Errorf("lab result: id and patient_id are required")
	}
	if l.Status != LabNormal && l.Status != LabAbnormal {
		return fmt.Errorf("lab result %s: invalid status %q", l.ID, l.Status)
	}
	return nil
}

// Patient maps to the patients collection. The child lists are hydrated from
// their own collections, scoped by patient_id; the query layer's filter is
// what keeps them referentially consistent, not the entity itself.
type Patient struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Age                int                   `json:"age"`
	Gender             string                `json:"gender"`
	BloodType          string                `json:"blood_type"`
	LastVisit          string                `json:"last_visit"`
	Status             string                `json:"status"`
	ImageURL           string                `json:"image_url"`
	Phone              string                `json:"phone"`
	Email              string                `json:"email"`
	Address            string                `json:"address"`
	EmergencyContact   EmergencyContact      `json:"emergency_contact"`
	Allergies          []string              `json:"allergies"`
	ChronicConditions  []string              `json:"chronic_conditions"`
	CurrentMedications []Medication          `json:"current_medications"`
	MedicalHistory     []MedicalHistoryEvent `json:"medical_history"`
	LabResults         []LabResult           `json:"lab_results"`
	PrimaryDoctorID    string                `json:"primary_doctor_id"`
}

func (p *Patient) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("patient: id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("patient %s: name is required", p.ID)
	}
	if p.Age < 0 {
		return fmt.Errorf("patient %s: negative age", p.ID)
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("patient %s: invalid gender %q", p.ID, p.Gender)
	}
	if !validStatuses[p.Status] {
		return fmt.Errorf("patient %s: invalid status %q", p.ID, p.Status)
	}
	return nil
}
