package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository abstracts account persistence from the domain layer.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
	UpdateProfile(ctx context.Context, u User) error
	UpdateResume(ctx context.Context, id uuid.UUID, filename string, resumeSkills []string) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SetRole(ctx context.Context, id uuid.UUID, role Role) error
	CountAdmins(ctx context.Context) (int, error)
	// Delete removes the account; when the target is an admin the
	// implementation must re-check the admin count in the same transaction
	// and return access.ErrLastAdminProtected if the deletion would leave
	// zero admins.
	Delete(ctx context.Context, id uuid.UUID) error
}
