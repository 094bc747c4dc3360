package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a job id does not resolve.
	ErrNotFound = errors.New("job not found")
	// ErrTitleRequired is returned when a posting has an empty title.
	ErrTitleRequired = errors.New("job title is required")
)

// Job is a posting created by a recruiter. Skills is the required skill set
// used for match scoring; it is immutable after creation (no edit path).
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Location    string    `json:"location,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	PostedBy    uuid.UUID `json:"postedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository is the persistence port for jobs.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
