package user

import (
	"context"

	"github.com/google/uuid"
)

// ProfileUpdate carries the self-service profile fields. Skills here are
// manually entered and are not constrained to the vocabulary.
type ProfileUpdate struct {
	Phone      string
	Location   string
	Experience string
	Skills     []string
}

// UseCase covers account self-service reads and profile updates.
type UseCase interface {
	Get(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (User, error)
}

type service struct {
	repo Repository
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	u.Phone = upd.Phone
	u.Location = upd.Location
	u.Experience = upd.Experience
	u.Skills = upd.Skills
	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}
