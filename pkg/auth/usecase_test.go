package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/user"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return user.ErrUserAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) List(context.Context, int, int) ([]user.User, error) { return nil, nil }

func (r *fakeUserRepo) UpdateProfile(context.Context, user.User) error { return nil }

func (r *fakeUserRepo) UpdateResume(context.Context, uuid.UUID, string, []string) error {
	return nil
}

func (r *fakeUserRepo) SetBlocked(context.Context, uuid.UUID, bool) error { return nil }

func (r *fakeUserRepo) SetRole(context.Context, uuid.UUID, user.Role) error { return nil }

func (r *fakeUserRepo) CountAdmins(context.Context) (int, error) { return 0, nil }

func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

type staticTokens struct{}

func (staticTokens) Generate(context.Context, user.User) (string, error) { return "tok", nil }

func TestRegisterDefaultsToJobseeker(t *testing.T) {
	svc := NewService(newFakeUserRepo(), staticTokens{})

	res, err := svc.Register(context.Background(), "Asha", "asha@example.com", "secret", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.User.Role != user.RoleJobseeker {
		t.Errorf("role = %s, want jobseeker", res.User.Role)
	}
	if res.Token != "tok" {
		t.Errorf("token = %q", res.Token)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), staticTokens{})

	_, err := svc.Register(context.Background(), "Eve", "eve@example.com", "secret", user.RoleAdmin)
	if !errors.Is(err, access.ErrRoleNotPermitted) {
		t.Fatalf("got %v, want ErrRoleNotPermitted", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, staticTokens{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, "A", "dup@example.com", "secret", user.RoleRecruiter); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "B", "dup@example.com", "secret", user.RoleRecruiter); !errors.Is(err, user.ErrUserAlreadyExists) {
		t.Fatalf("got %v, want ErrUserAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, staticTokens{})
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	repo.byEmail["jo@example.com"] = user.User{
		ID: uuid.New(), Email: "jo@example.com", PasswordHash: string(hash), Role: user.RoleJobseeker,
	}

	if _, err := svc.Login(ctx, "jo@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.Login(ctx, "jo@example.com", "wrong"); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret"); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginBlockedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, staticTokens{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	repo.byEmail["blocked@example.com"] = user.User{
		ID: uuid.New(), Email: "blocked@example.com", PasswordHash: string(hash),
		Role: user.RoleJobseeker, Blocked: true,
	}

	_, err := svc.Login(context.Background(), "blocked@example.com", "secret")
	if !errors.Is(err, access.ErrAccountBlocked) {
		t.Fatalf("got %v, want ErrAccountBlocked", err)
	}
}
