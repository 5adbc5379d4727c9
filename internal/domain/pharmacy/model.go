package pharmacy

import "fmt"

// Prescription maps to the prescriptions collection.
type Prescription struct {
	ID         string `json:"id"`
	PatientID  string `json:"patient_id"`
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (p *Prescription) Validate() error {
	if p.ID == "" || p.PatientID == "" {
		return fmt.Errorf("prescription: id and patient_id are required")
	}
	if p.Medication == "" {
		return fmt.Errorf("prescription %s: medication is required", p.ID)
	}
	return nil
}
