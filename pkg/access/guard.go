// Package access holds the pure authorization predicates evaluated before
// every mutating operation. Each guard is a function of its inputs only: it
// knows nothing about transport or persistence and returns nil or a named
// denial for the caller to report.
package access

import (
	"errors"

	"github.com/google/uuid"

	"github.com/adarshm/jobportal/pkg/user"
)

// Denial reasons. Callers map these to user-facing responses.
var (
	ErrRoleNotPermitted       = errors.New("role not permitted")
	ErrOwnershipMismatch      = errors.New("actor does not own this resource")
	ErrLastAdminProtected     = errors.New("cannot remove the last admin")
	ErrInvalidPromotionTarget = errors.New("only recruiters can be promoted")
	ErrAccountBlocked         = errors.New("account is blocked")
)

// CanApply: only jobseekers apply to jobs.
func CanApply(actor user.User) error {
	if actor.Role != user.RoleJobseeker {
		return ErrRoleNotPermitted
	}
	return nil
}

// CanPostJob: only recruiters post jobs.
func CanPostJob(actor user.User) error {
	if actor.Role != user.RoleRecruiter {
		return ErrRoleNotPermitted
	}
	return nil
}

// CanManageApplications checks that the actor is a recruiter AND owns the
// job the application belongs to. Ownership, not merely role.
func CanManageApplications(actor user.User, jobOwnerID uuid.UUID) error {
	if actor.Role != user.RoleRecruiter {
		return ErrRoleNotPermitted
	}
	if actor.ID != jobOwnerID {
		return ErrOwnershipMismatch
	}
	return nil
}

// CanAdminister: admin-only operations.
func CanAdminister(actor user.User) error {
	if actor.Role != user.RoleAdmin {
		return ErrRoleNotPermitted
	}
	return nil
}

// CanDeleteUser enforces the last-admin invariant: deleting an admin is
// allowed only while at least one other admin remains. adminCount is the
// current number of admin accounts.
func CanDeleteUser(target user.User, adminCount int) error {
	if target.Role == user.RoleAdmin && adminCount <= 1 {
		return ErrLastAdminProtected
	}
	return nil
}

// CanSelfDeleteAdmin applies the same last-admin rule to self-deletion.
func CanSelfDeleteAdmin(actor user.User, adminCount int) error {
	if actor.Role != user.RoleAdmin {
		return ErrRoleNotPermitted
	}
	if adminCount <= 1 {
		return ErrLastAdminProtected
	}
	return nil
}

// CanPromote allows promotion to admin for recruiters only; jobseekers and
// existing admins are rejected.
func CanPromote(target user.User) error {
	if target.Role != user.RoleRecruiter {
		return ErrInvalidPromotionTarget
	}
	return nil
}

// CanLogin denies blocked accounts regardless of credential correctness.
func CanLogin(account user.User) error {
	if account.Blocked {
		return ErrAccountBlocked
	}
	return nil
}
