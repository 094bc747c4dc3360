package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adarshm/jobportal/pkg/access"
	"github.com/adarshm/jobportal/pkg/user"
)

// UseCase describes registration and login behavior.
type UseCase interface {
	Register(ctx context.Context, name, email, password string, role user.Role) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
}

// Result is returned on successful register/login.
type Result struct {
	User  user.User
	Token string
}

type service struct {
	repo   user.Repository
	tokens TokenGenerator
}

// NewService returns the default implementation of UseCase.
func NewService(repo user.Repository, tokens TokenGenerator) UseCase {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, name, email, password string, role user.Role) (Result, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Result{}, user.ErrInvalidCredentials
	}
	if role == "" {
		role = user.RoleJobseeker
	}
	// Admin accounts are only created through promotion.
	if role != user.RoleJobseeker && role != user.RoleRecruiter {
		return Result{}, access.ErrRoleNotPermitted
	}

	// If user exists, fail fast (best-effort check; the unique index is the
	// real guarantee)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Result{}, user.ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
		ResumeSkills: []string{},
		Skills:       []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Generate(ctx, u)
	if err != nil {
		return Result{}, err
	}
	return Result{User: u, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return Result{}, user.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Result{}, user.ErrInvalidCredentials
	}
	if err := access.CanLogin(u); err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Generate(ctx, u)
	if err != nil {
		return Result{}, err
	}
	return Result{User: u, Token: token}, nil
}
