package billing

import "fmt"

// Invoice statuses.
const (
	StatusPaid    = "Paid"
	StatusDue     = "Due"
	StatusOverdue = "Overdue"
)

var validStatuses = map[string]bool{
	StatusPaid: true, StatusDue: true, StatusOverdue: true,
}

// Invoice maps to the invoices collection.
type Invoice struct {
	ID        string  `json:"id"`
	PatientID string  `json:"patient_id"`
	Date      string  `json:"date"`
	Service   string  `json:"service"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

func (i *Invoice) Validate() error {
	if i.ID == "" || i.PatientID == "" {
		return fmt.Errorf("invoice: id and patient_id are required")
	}
	if i.Amount < 0 {
		return fmt.Errorf("invoice %s: negative amount", i.ID)
	}
	if !validStatuses[i.Status] {
		return fmt.Errorf("invoice %s: invalid status %q", i.ID, i.Status)
	}
	return nil
}
