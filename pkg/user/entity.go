package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the account role controlling what an actor may do.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobseeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// User is a domain entity representing a portal account. ResumeSkills holds
// the vocabulary subset extracted from the last uploaded resume; Skills are
// manually entered on the profile and are not vocabulary-constrained.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ResumeSkills []string  `json:"resumeSkills"`
	ResumeFile   string    `json:"resumeFile,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Skills       []string  `json:"skills"`
	Blocked      bool      `json:"blocked"`
	CreatedAt    time.Time `json:"createdAt"`
}
