package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/job"
	"github.com/adarshm/jobportal/pkg/matching"
	"github.com/adarshm/jobportal/pkg/user"
)

// UseCase governs the application lifecycle: apply, status transitions and
// the two read projections.
type UseCase interface {
	Apply(ctx context.Context, actor user.User, jobID uuid.UUID) (Application, error)
	SetStatus(ctx context.Context, actor user.User, applicationID uuid.UUID, status Status) (Application, error)
	ListForRecruiter(ctx context.Context, actor user.User) ([]RecruiterItem, error)
	ListForCandidate(ctx context.Context, actor user.User) ([]CandidateItem, error)
}

type service struct {
	repo Repository
	jobs job.Repository
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository, jobs job.Repository) UseCase {
	return &service{repo: repo, jobs: jobs}
}

// Apply creates a Pending application with the match score computed from the
// job's required skills and the actor's extracted resume skills. The
// duplicate check is delegated to the repository's conditional insert so
// concurrent applies for the same pair cannot both succeed.
func (s *service) Apply(ctx context.Context, actor user.User, jobID uuid.UUID) (Application, error) {
	if err := access.CanApply(actor); err != nil {
		return Application{}, err
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return Application{}, err
	}
	a := Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		ApplicantID: actor.ID,
		MatchScore:  matching.Score(j.Skills, actor.ResumeSkills),
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

// SetStatus moves the application to a terminal status. Only the recruiter
// owning the application's job may do it; repeating a terminal status (or
// switching between the two) is allowed.
func (s *service) SetStatus(ctx context.Context, actor user.User, applicationID uuid.UUID, status Status) (Application, error) {
	if !status.Terminal() {
		return Application{}, ErrInvalidStatus
	}
	a, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return Application{}, err
	}
	j, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return Application{}, err
	}
	if err := access.CanManageApplications(actor, j.PostedBy); err != nil {
		return Application{}, err
	}
	if err := s.repo.UpdateStatus(ctx, a.ID, status); err != nil {
		return Application{}, err
	}
	a.Status = status
	return a, nil
}

func (s *service) ListForRecruiter(ctx context.Context, actor user.User) ([]RecruiterItem, error) {
	if actor.Role != user.RoleRecruiter {
		return nil, access.ErrRoleNotPermitted
	}
	return s.repo.ListByJobOwner(ctx, actor.ID)
}

func (s *service) ListForCandidate(ctx context.Context, actor user.User) ([]CandidateItem, error) {
	if err := access.CanApply(actor); err != nil {
		return nil, err
	}
	return s.repo.ListByApplicant(ctx, actor.ID)
}
