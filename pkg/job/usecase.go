package job

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/matching"
	"github.com/adarshm/jobportal/pkg/skills"
	"github.com/adarshm/jobportal/pkg/user"
)

// UseCase covers posting and browsing jobs, including the jobseeker
// recommendation query.
type UseCase interface {
	Create(ctx context.Context, actor user.User, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Recommended(ctx context.Context, actor user.User) ([]Job, error)
	// admin
	ListByRecruiter(ctx context.Context, actor user.User, recruiterID uuid.UUID) ([]Job, error)
	Delete(ctx context.Context, actor user.User, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, actor user.User, j Job) (Job, error) {
	if err := access.CanPostJob(actor); err != nil {
		return Job{}, err
	}
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return Job{}, ErrTitleRequired
	}
	// Required skills are stored canonically so scoring and recommendation
	// compare like with like.
	canonical := make([]string, 0, len(j.Skills))
	for _, sk := range j.Skills {
		if n := skills.Normalize(sk); n != "" {
			canonical = append(canonical, n)
		}
	}
	j.Skills = canonical
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.PostedBy = actor.ID
	j.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.repo.List(ctx, limit, offset)
}

// Recommended returns jobs sharing at least one skill with the jobseeker's
// extracted resume skills, in listing order.
func (s *service) Recommended(ctx context.Context, actor user.User) ([]Job, error) {
	if err := access.CanApply(actor); err != nil {
		return nil, err
	}
	jobs, err := s.repo.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	rec := slices.Collect(matching.Recommend(
		actor.ResumeSkills,
		slices.Values(jobs),
		func(j Job) []string { return j.Skills },
	))
	if rec == nil {
		rec = []Job{}
	}
	return rec, nil
}

func (s *service) ListByRecruiter(ctx context.Context, actor user.User, recruiterID uuid.UUID) ([]Job, error) {
	if err := access.CanAdminister(actor); err != nil {
		return nil, err
	}
	return s.repo.ListByRecruiter(ctx, recruiterID)
}

func (s *service) Delete(ctx context.Context, actor user.User, id uuid.UUID) error {
	if err := access.CanAdminister(actor); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
