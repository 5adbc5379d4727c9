package doctor

import "fmt"

// Doctor statuses.
const (
	StatusAvailable = "Available"
	StatusOnCall    = "On-call"
	StatusAway      = "Away"
)

var validStatuses = map[string]bool{
	StatusAvailable: true, StatusOnCall: true, StatusAway: true,
}

// Doctor maps to the doctors collection.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Status    string `json:"status"`
	ImageURL  string `json:"image_url"`
}

// Validate rejects a row that must not be trusted by a view: missing fields
// or an out-of-range status surface as a fetch error instead of rendering
// partial data.
func (d *Doctor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("doctor: id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("doctor %s: name is required", d.ID)
	}
	if d.Specialty == "" {
		return fmt.Errorf("doctor %s: specialty is required", d.ID)
	}
	if !validStatuses[d.Status] {
		return fmt.Errorf("doctor %s: invalid status %q", d.ID, d.Status)
	}
	return nil
}
