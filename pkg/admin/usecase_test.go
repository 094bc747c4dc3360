package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/user"
)

// memUserRepo is an in-memory user.Repository that mirrors the store-side
// last-admin re-check performed by the postgres implementation.
type memUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMemUserRepo(seed ...user.User) *memUserRepo {
	r := &memUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) List(_ context.Context, _, _ int) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) UpdateResume(_ context.Context, id uuid.UUID, filename string, resumeSkills []string) error {
	u := r.users[id]
	u.ResumeFile = filename
	u.ResumeSkills = resumeSkills
	r.users[id] = u
	return nil
}

func (r *memUserRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Blocked = blocked
	r.users[id] = u
	return nil
}

func (r *memUserRepo) SetRole(_ context.Context, id uuid.UUID, role user.Role) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Role = role
	r.users[id] = u
	return nil
}

func (r *memUserRepo) CountAdmins(_ context.Context) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Role == user.RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	if u.Role == user.RoleAdmin {
		if n, _ := r.CountAdmins(ctx); n <= 1 {
			return access.ErrLastAdminProtected
		}
	}
	delete(r.users, id)
	return nil
}

func mk(role user.Role) user.User {
	return user.User{ID: uuid.New(), Role: role}
}

func TestDeleteUserLastAdmin(t *testing.T) {
	admin := mk(user.RoleAdmin)
	seeker := mk(user.RoleJobseeker)
	repo := newMemUserRepo(admin, seeker)
	svc := NewService(repo)
	ctx := context.Background()

	// Sole admin may not be deleted, even by themselves via the admin route.
	err := svc.DeleteUser(ctx, admin, admin.ID)
	require.ErrorIs(t, err, access.ErrLastAdminProtected)

	// Non-admin deletion is fine.
	require.NoError(t, svc.DeleteUser(ctx, admin, seeker.ID))
	_, err = repo.GetByID(ctx, seeker.ID)
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestDeleteUserWithTwoAdmins(t *testing.T) {
	a1 := mk(user.RoleAdmin)
	a2 := mk(user.RoleAdmin)
	repo := newMemUserRepo(a1, a2)
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, a1, a2.ID))
	// Now a1 is the last admin again.
	err := svc.DeleteUser(ctx, a1, a1.ID)
	require.ErrorIs(t, err, access.ErrLastAdminProtected)
}

func TestSelfDelete(t *testing.T) {
	a1 := mk(user.RoleAdmin)
	a2 := mk(user.RoleAdmin)
	repo := newMemUserRepo(a1, a2)
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SelfDelete(ctx, a2))
	require.ErrorIs(t, svc.SelfDelete(ctx, a1), access.ErrLastAdminProtected)
	require.ErrorIs(t, svc.SelfDelete(ctx, mk(user.RoleRecruiter)), access.ErrRoleNotPermitted)
}

func TestToggleBlock(t *testing.T) {
	admin := mk(user.RoleAdmin)
	seeker := mk(user.RoleJobseeker)
	repo := newMemUserRepo(admin, seeker)
	svc := NewService(repo)
	ctx := context.Background()

	blocked, err := svc.ToggleBlock(ctx, admin, seeker.ID)
	require.NoError(t, err)
	require.True(t, blocked)

	blocked, err = svc.ToggleBlock(ctx, admin, seeker.ID)
	require.NoError(t, err)
	require.False(t, blocked)

	_, err = svc.ToggleBlock(ctx, seeker, admin.ID)
	require.ErrorIs(t, err, access.ErrRoleNotPermitted)
}

func TestPromote(t *testing.T) {
	admin := mk(user.RoleAdmin)
	recruiter := mk(user.RoleRecruiter)
	seeker := mk(user.RoleJobseeker)
	repo := newMemUserRepo(admin, recruiter, seeker)
	svc := NewService(repo)
	ctx := context.Background()

	promoted, err := svc.Promote(ctx, admin, recruiter.ID)
	require.NoError(t, err)
	require.Equal(t, user.RoleAdmin, promoted.Role)

	_, err = svc.Promote(ctx, admin, seeker.ID)
	require.ErrorIs(t, err, access.ErrInvalidPromotionTarget)

	_, err = svc.Promote(ctx, admin, admin.ID)
	require.ErrorIs(t, err, access.ErrInvalidPromotionTarget)

	_, err = svc.Promote(ctx, recruiter, seeker.ID)
	require.ErrorIs(t, err, access.ErrRoleNotPermitted)
}

func TestListAndGetGuarded(t *testing.T) {
	admin := mk(user.RoleAdmin)
	seeker := mk(user.RoleJobseeker)
	repo := newMemUserRepo(admin, seeker)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.ListUsers(ctx, seeker, 50, 0)
	require.ErrorIs(t, err, access.ErrRoleNotPermitted)

	users, err := svc.ListUsers(ctx, admin, 50, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)

	got, err := svc.GetUser(ctx, admin, seeker.ID)
	require.NoError(t, err)
	require.Equal(t, seeker.ID, got.ID)
}
