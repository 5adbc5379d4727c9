package identity

import (
	"fmt"

	"github.com/medidesk/medidesk/internal/domain/doctor"
	"github.com/medidesk/medidesk/internal/domain/patient"
)

// Role is the access level a session runs under. Every switch over Role
// must handle all three values; there is no default role.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// User is the resolved identity behind a session. Exactly one of Doctor
// and Patient is set, matching Role; both are nil for an admin.
type User struct {
	Role    Role             `json:"role"`
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Doctor  *doctor.Doctor   `json:"doctor,omitempty"`
	Patient *patient.Patient `json:"patient,omitempty"`
}

func (u *User) Validate() error {
	if !u.Role.Valid() {
		return fmt.Errorf("identity: invalid role %q", u.Role)
	}
	switch u.Role {
	case RoleDoctor:
		if u.Doctor == nil {
			return fmt.Errorf("identity: doctor user without doctor record")
		}
	case RolePatient:
		if u.Patient == nil {
			return fmt.Errorf("identity: patient user without patient record")
		}
	}
	return nil
}
