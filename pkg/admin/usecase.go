// Package admin implements the guarded account-administration operations:
// listing, blocking, promotion and deletion under the last-admin invariant.
package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/user"
)

type UseCase interface {
	ListUsers(ctx context.Context, actor user.User, limit, offset int) ([]user.User, error)
	GetUser(ctx context.Context, actor user.User, id uuid.UUID) (user.User, error)
	DeleteUser(ctx context.Context, actor user.User, targetID uuid.UUID) error
	SelfDelete(ctx context.Context, actor user.User) error
	ToggleBlock(ctx context.Context, actor user.User, targetID uuid.UUID) (bool, error)
	Promote(ctx context.Context, actor user.User, targetID uuid.UUID) (user.User, error)
}

type service struct {
	users user.Repository
}

// NewService returns the default UseCase implementation.
func NewService(users user.Repository) UseCase { return &service{users: users} }

func (s *service) ListUsers(ctx context.Context, actor user.User, limit, offset int) ([]user.User, error) {
	if err := access.CanAdminister(actor); err != nil {
		return nil, err
	}
	return s.users.List(ctx, limit, offset)
}

func (s *service) GetUser(ctx context.Context, actor user.User, id uuid.UUID) (user.User, error) {
	if err := access.CanAdminister(actor); err != nil {
		return user.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

// DeleteUser removes an account. Deleting an admin is refused while it is
// the last one; the repository re-checks the count in the delete transaction
// so concurrent deletes cannot slip past the guard.
func (s *service) DeleteUser(ctx context.Context, actor user.User, targetID uuid.UUID) error {
	if err := access.CanAdminister(actor); err != nil {
		return err
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	count, err := s.users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if err := access.CanDeleteUser(target, count); err != nil {
		return err
	}
	return s.users.Delete(ctx, targetID)
}

// SelfDelete lets an admin remove their own account under the same
// last-admin rule.
func (s *service) SelfDelete(ctx context.Context, actor user.User) error {
	count, err := s.users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if err := access.CanSelfDeleteAdmin(actor, count); err != nil {
		return err
	}
	return s.users.Delete(ctx, actor.ID)
}

// ToggleBlock flips the target's blocked flag and returns the new value.
func (s *service) ToggleBlock(ctx context.Context, actor user.User, targetID uuid.UUID) (bool, error) {
	if err := access.CanAdminister(actor); err != nil {
		return false, err
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	blocked := !target.Blocked
	if err := s.users.SetBlocked(ctx, targetID, blocked); err != nil {
		return false, err
	}
	return blocked, nil
}

// Promote raises a recruiter to admin. Jobseekers and existing admins are
// rejected.
func (s *service) Promote(ctx context.Context, actor user.User, targetID uuid.UUID) (user.User, error) {
	if err := access.CanAdminister(actor); err != nil {
		return user.User{}, err
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return user.User{}, err
	}
	if err := access.CanPromote(target); err != nil {
		return user.User{}, err
	}
	if err := s.users.SetRole(ctx, targetID, user.RoleAdmin); err != nil {
		return user.User{}, err
	}
	target.Role = user.RoleAdmin
	return target, nil
}
