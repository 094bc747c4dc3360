package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an application.
// Pending is initial; Shortlisted and Rejected are terminal, with no
// transition back to Pending. Re-setting a terminal status is permitted (the
// owning recruiter may flip between the two or repeat one).
type Status string

const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

// Terminal reports whether s is a settable end state.
func (s Status) Terminal() bool {
	return s == StatusShortlisted || s == StatusRejected
}

var (
	// ErrNotFound is returned when an application id does not resolve.
	ErrNotFound = errors.New("application not found")
	// ErrDuplicateApplication is returned when the (job, applicant) pair
	// already has an application.
	ErrDuplicateApplication = errors.New("already applied for this job")
	// ErrInvalidStatus is returned for a status outside the terminal set.
	ErrInvalidStatus = errors.New("invalid application status")
)

// Application records one candidate's application to one job. MatchScore is
// computed once at creation and never recomputed.
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	ApplicantID uuid.UUID `json:"applicantId"`
	MatchScore  int       `json:"matchScore"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecruiterItem is the recruiter-inbox projection: the application joined
// with job and applicant display fields.
type RecruiterItem struct {
	Application
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
}

// CandidateItem is the jobseeker "my applications" projection.
type CandidateItem struct {
	Application
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`
}

// Repository is the persistence port for applications.
type Repository interface {
	// Create inserts the application only if no record exists for the same
	// (JobID, ApplicantID) pair, atomically, and returns
	// ErrDuplicateApplication otherwise.
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	// ListByJobOwner joins applications to jobs and keeps only rows whose
	// job is owned by recruiterID.
	ListByJobOwner(ctx context.Context, recruiterID uuid.UUID) ([]RecruiterItem, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]CandidateItem, error)
}
