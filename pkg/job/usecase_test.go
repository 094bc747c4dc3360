package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/user"
)

type fakeJobRepo struct {
	jobs []Job
}

func (r *fakeJobRepo) Create(_ context.Context, j Job) error {
	r.jobs = append(r.jobs, j)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, ErrNotFound
}

func (r *fakeJobRepo) List(context.Context, int, int) ([]Job, error) {
	return r.jobs, nil
}

func (r *fakeJobRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]Job, error) {
	var out []Job
	for _, j := range r.jobs {
		if j.PostedBy == recruiterID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, j := range r.jobs {
		if j.ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func recruiter() user.User {
	return user.User{ID: uuid.New(), Role: user.RoleRecruiter}
}

func TestCreateRequiresRecruiter(t *testing.T) {
	svc := NewService(&fakeJobRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, user.User{ID: uuid.New(), Role: user.RoleJobseeker}, Job{Title: "Backend Dev"})
	if !errors.Is(err, access.ErrRoleNotPermitted) {
		t.Fatalf("jobseeker create: got %v, want ErrRoleNotPermitted", err)
	}

	j, err := svc.Create(ctx, recruiter(), Job{Title: "Backend Dev", Skills: []string{" Go ", "SQL", ""}})
	if err != nil {
		t.Fatalf("recruiter create: %v", err)
	}
	if len(j.Skills) != 2 || j.Skills[0] != "go" || j.Skills[1] != "sql" {
		t.Errorf("skills not canonicalized: %v", j.Skills)
	}
	if j.ID == uuid.Nil || j.CreatedAt.IsZero() {
		t.Error("id/createdAt not set")
	}
}

func TestCreateTitleRequired(t *testing.T) {
	svc := NewService(&fakeJobRepo{})

	_, err := svc.Create(context.Background(), recruiter(), Job{Title: "   ", Skills: []string{"go"}})
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("blank title: got %v, want ErrTitleRequired", err)
	}
}

func TestCreateOwnerIsActor(t *testing.T) {
	svc := NewService(&fakeJobRepo{})
	rec := recruiter()

	j, err := svc.Create(context.Background(), rec, Job{Title: "X", PostedBy: uuid.New()})
	if err != nil {
		t.Fatal(err)
	}
	if j.PostedBy != rec.ID {
		t.Errorf("postedBy = %s, want actor id %s", j.PostedBy, rec.ID)
	}
}

func TestRecommended(t *testing.T) {
	repo := &fakeJobRepo{jobs: []Job{
		{ID: uuid.New(), Title: "J1", Skills: []string{"python"}},
		{ID: uuid.New(), Title: "J2", Skills: []string{"java"}},
	}}
	svc := NewService(repo)

	seeker := user.User{ID: uuid.New(), Role: user.RoleJobseeker, ResumeSkills: []string{"python", "sql"}}
	got, err := svc.Recommended(context.Background(), seeker)
	if err != nil {
		t.Fatalf("Recommended: %v", err)
	}
	if len(got) != 1 || got[0].Title != "J1" {
		t.Fatalf("got %v, want [J1]", got)
	}
}

func TestRecommendedDeniedForRecruiter(t *testing.T) {
	svc := NewService(&fakeJobRepo{})
	_, err := svc.Recommended(context.Background(), recruiter())
	if !errors.Is(err, access.ErrRoleNotPermitted) {
		t.Fatalf("got %v, want ErrRoleNotPermitted", err)
	}
}

func TestRecommendedEmptyResumeSkills(t *testing.T) {
	repo := &fakeJobRepo{jobs: []Job{{ID: uuid.New(), Skills: []string{"go"}}}}
	svc := NewService(repo)

	seeker := user.User{ID: uuid.New(), Role: user.RoleJobseeker}
	got, err := svc.Recommended(context.Background(), seeker)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no recommendations, got %v", got)
	}
}

func TestAdminGuards(t *testing.T) {
	rec := recruiter()
	repo := &fakeJobRepo{jobs: []Job{{ID: uuid.New(), PostedBy: rec.ID}}}
	svc := NewService(repo)
	ctx := context.Background()
	admin := user.User{ID: uuid.New(), Role: user.RoleAdmin}

	if _, err := svc.ListByRecruiter(ctx, rec, rec.ID); !errors.Is(err, access.ErrRoleNotPermitted) {
		t.Errorf("recruiter listing recruiter jobs: got %v", err)
	}
	jobs, err := svc.ListByRecruiter(ctx, admin, rec.ID)
	if err != nil || len(jobs) != 1 {
		t.Errorf("admin listing: %v, %d jobs", err, len(jobs))
	}

	if err := svc.Delete(ctx, rec, repo.jobs[0].ID); !errors.Is(err, access.ErrRoleNotPermitted) {
		t.Errorf("recruiter delete: got %v", err)
	}
	if err := svc.Delete(ctx, admin, repo.jobs[0].ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}
